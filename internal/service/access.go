package service

import (
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/util"
)

// Authorization predicates. All of them are pure: the caller fetches the
// entities first, these only decide. Route-level role gates live in
// middleware.RoleMiddleware; the functions here cover ownership.
//
// Ownership denials are surfaced as not-found by the services, uniformly,
// so a non-owner can never distinguish "exists but not yours" from
// "does not exist".

// CanManageContent reports whether the principal may mutate or delete a
// teacher-owned resource (module, quiz, assignment).
func CanManageContent(claims *util.Claims, createdBy uint) bool {
	if claims == nil {
		return false
	}
	return claims.Role == model.Admin || claims.UserID == createdBy
}

// CanAccessStudent reports whether the principal may read or mutate a
// student-scoped record: the student themselves, their owning teacher, or
// an admin.
func CanAccessStudent(claims *util.Claims, student *model.User) bool {
	if claims == nil || student == nil {
		return false
	}
	if claims.Role == model.Admin {
		return true
	}
	if claims.UserID == student.ID {
		return true
	}
	return claims.Role == model.Teacher &&
		student.TeacherID != nil &&
		*student.TeacherID == claims.UserID
}

// IsAssignedTo reports explicit assignment membership.
func IsAssignedTo(assigned []uint, studentID uint) bool {
	return model.ContainsID(assigned, studentID)
}

// CanViewModuleAsStudent gates student reads: the module must be active and
// either explicitly assigned or matching the student's grade.
func CanViewModuleAsStudent(m *model.Module, student *model.User) bool {
	if m == nil || student == nil || !m.IsActive {
		return false
	}
	if IsAssignedTo(m.AssignedTo, student.ID) {
		return true
	}
	return m.GradeLevel != "" && m.GradeLevel == student.Grade
}

// CanTakeQuiz gates student access to a quiz: explicitly assigned, or grade
// matched when not explicitly assigned. Inactive quizzes are never visible.
func CanTakeQuiz(q *model.Quiz, student *model.User) bool {
	if q == nil || student == nil || !q.IsActive {
		return false
	}
	if IsAssignedTo(q.AssignedTo, student.ID) {
		return true
	}
	return q.GradeLevel != "" && q.GradeLevel == student.Grade
}

// CanRecordProgress gates progress writes: a student may record progress
// only against a module or quiz that is visible to them (exactly one of
// m/q is non-nil). Unassigned and inactive content is rejected the same
// way as absent content.
func CanRecordProgress(student *model.User, m *model.Module, q *model.Quiz) bool {
	if m != nil {
		return CanViewModuleAsStudent(m, student)
	}
	return CanTakeQuiz(q, student)
}

// CanSubmitAssignment gates assignment fetch/submit for students: explicit
// assignment only, and never against drafts.
func CanSubmitAssignment(a *model.Assignment, studentID uint) bool {
	if a == nil || a.Status == model.AssignmentDraft {
		return false
	}
	return IsAssignedTo(a.AssignedTo, studentID)
}
