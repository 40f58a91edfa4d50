package service

import (
	"testing"

	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func studentUser(id, teacherID uint, grade string) *model.User {
	u := &model.User{
		Role:      model.Student,
		Grade:     grade,
		TeacherID: &teacherID,
	}
	u.ID = id
	return u
}

func TestCanManageContent(t *testing.T) {
	owner := &util.Claims{UserID: 7, Role: model.Teacher}
	other := &util.Claims{UserID: 8, Role: model.Teacher}
	admin := &util.Claims{UserID: 99, Role: model.Admin}

	assert.True(t, CanManageContent(owner, 7))
	assert.False(t, CanManageContent(other, 7))
	assert.True(t, CanManageContent(admin, 7))
	assert.False(t, CanManageContent(nil, 7))
}

func TestCanAccessStudent(t *testing.T) {
	student := studentUser(3, 7, "3rd")

	assert.True(t, CanAccessStudent(&util.Claims{UserID: 3, Role: model.Student}, student), "self")
	assert.True(t, CanAccessStudent(&util.Claims{UserID: 7, Role: model.Teacher}, student), "owning teacher")
	assert.False(t, CanAccessStudent(&util.Claims{UserID: 8, Role: model.Teacher}, student), "other teacher")
	assert.True(t, CanAccessStudent(&util.Claims{UserID: 1, Role: model.Admin}, student), "admin")
	assert.False(t, CanAccessStudent(nil, student))
	assert.False(t, CanAccessStudent(&util.Claims{UserID: 7, Role: model.Teacher}, nil))
}

func TestCanAccessStudentWithoutTeacher(t *testing.T) {
	orphan := &model.User{Role: model.Student}
	orphan.ID = 3

	assert.False(t, CanAccessStudent(&util.Claims{UserID: 7, Role: model.Teacher}, orphan))
}

func TestCanViewModuleAsStudent(t *testing.T) {
	student := studentUser(3, 7, "3rd")

	assigned := &model.Module{AssignedTo: model.IDList{3, 4}, IsActive: true}
	assert.True(t, CanViewModuleAsStudent(assigned, student))

	gradeMatch := &model.Module{GradeLevel: "3rd", IsActive: true}
	assert.True(t, CanViewModuleAsStudent(gradeMatch, student), "grade fallback without explicit assignment")

	gradeMiss := &model.Module{GradeLevel: "4th", IsActive: true}
	assert.False(t, CanViewModuleAsStudent(gradeMiss, student))

	noGrade := &model.Module{IsActive: true}
	assert.False(t, CanViewModuleAsStudent(noGrade, student), "empty grade level never matches")

	inactive := &model.Module{AssignedTo: model.IDList{3}, GradeLevel: "3rd"}
	assert.False(t, CanViewModuleAsStudent(inactive, student), "inactive is invisible even when assigned")
}

func TestCanTakeQuiz(t *testing.T) {
	student := studentUser(3, 7, "3rd")

	assert.True(t, CanTakeQuiz(&model.Quiz{AssignedTo: model.IDList{3}, IsActive: true}, student))
	assert.True(t, CanTakeQuiz(&model.Quiz{GradeLevel: "3rd", IsActive: true}, student))
	assert.False(t, CanTakeQuiz(&model.Quiz{AssignedTo: model.IDList{4}, GradeLevel: "4th", IsActive: true}, student))
	assert.False(t, CanTakeQuiz(&model.Quiz{AssignedTo: model.IDList{3}}, student))
}

func TestCanRecordProgress(t *testing.T) {
	student := studentUser(3, 7, "3rd")

	assigned := &model.Module{AssignedTo: model.IDList{3}, IsActive: true}
	assert.True(t, CanRecordProgress(student, assigned, nil))

	unassigned := &model.Module{AssignedTo: model.IDList{4}, GradeLevel: "4th", IsActive: true}
	assert.False(t, CanRecordProgress(student, unassigned, nil), "another teacher's content is not writable")

	inactive := &model.Module{AssignedTo: model.IDList{3}, IsActive: false}
	assert.False(t, CanRecordProgress(student, inactive, nil), "inactive content takes no progress")

	gradeQuiz := &model.Quiz{GradeLevel: "3rd", IsActive: true}
	assert.True(t, CanRecordProgress(student, nil, gradeQuiz))

	offGradeQuiz := &model.Quiz{GradeLevel: "5th", IsActive: true}
	assert.False(t, CanRecordProgress(student, nil, offGradeQuiz))
}

func TestCanSubmitAssignment(t *testing.T) {
	active := &model.Assignment{Status: model.AssignmentActive, AssignedTo: model.IDList{3}}
	assert.True(t, CanSubmitAssignment(active, 3))
	assert.False(t, CanSubmitAssignment(active, 4), "not assigned")

	draft := &model.Assignment{Status: model.AssignmentDraft, AssignedTo: model.IDList{3}}
	assert.False(t, CanSubmitAssignment(draft, 3), "drafts are never submittable")

	gradeOnly := &model.Assignment{Status: model.AssignmentActive}
	assert.False(t, CanSubmitAssignment(gradeOnly, 3), "assignments require explicit membership")
}
