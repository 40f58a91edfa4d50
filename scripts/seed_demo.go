// Seeds a demo classroom: one teacher, three students with freshly minted
// secret codes, and a starter module and quiz. For local development only;
// running it twice fails on the teacher's unique email.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"fmt"
	"log"

	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"
	"lexilearn_backend/pkg/database"
	"lexilearn_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	moduleRepo := repository.NewModuleRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)

	email := "demo.teacher@lexilearn.local"
	teacher := &model.User{
		Name:       "Demo Teacher",
		Email:      &email,
		Role:       model.Teacher,
		School:     "Demo Elementary",
		GradeLevel: "3rd",
		Subject:    "Reading",
		IsActive:   true,
	}
	if err := authService.Register(teacher, "demo-password-123"); err != nil {
		log.Fatalf("failed to create teacher: %v", err)
	}
	fmt.Printf("teacher: %s / demo-password-123\n", email)

	teacherClaims := &util.Claims{UserID: teacher.ID, Role: model.Teacher}

	var studentIDs []uint
	for _, name := range []string{"Ada", "Ben", "Cleo"} {
		student, code, err := userService.CreateStudent(teacher.ID, service.CreateStudentRequest{
			Name:  name,
			Grade: "3rd",
		})
		if err != nil {
			log.Fatalf("failed to create student %s: %v", name, err)
		}
		studentIDs = append(studentIDs, student.ID)
		fmt.Printf("student %s: secret code %s\n", name, code)
	}

	moduleService := service.NewModuleService(moduleRepo, userRepo)
	module, err := moduleService.Create(teacherClaims, service.ModuleRequest{
		Title:      "Short Vowel Sounds",
		Category:   "phonics",
		Difficulty: "beginner",
		GradeLevel: "3rd",
		Content: []model.ContentItem{
			{Type: model.ContentText, Title: "Introduction", Body: "Short vowels make quick sounds."},
			{
				Type:          model.ContentQuestion,
				Title:         "Pick the short vowel",
				Body:          "Which word has a short 'a'?",
				Options:       []string{"cake", "cat", "car"},
				CorrectAnswer: 1,
				Points:        10,
			},
		},
		AssignedTo: studentIDs,
	})
	if err != nil {
		log.Fatalf("failed to create module: %v", err)
	}
	fmt.Printf("module %q created (id %d)\n", module.Title, module.ID)

	quizService := service.NewQuizService(quizRepo, userRepo)
	quiz, err := quizService.Create(teacherClaims, service.QuizRequest{
		Title:      "Vowel Check",
		Category:   "phonics",
		Difficulty: "beginner",
		GradeLevel: "3rd",
		Questions: []model.Question{
			{Text: "Which word rhymes with 'hat'?", Options: []string{"hot", "bat", "hit"}, CorrectAnswer: 1, Points: 10},
			{Text: "Pick every short-vowel word.", Options: []string{"bed", "bead", "bid"}, CorrectAnswer: []interface{}{0, 2}, Points: 5},
		},
		AssignedTo: studentIDs,
	})
	if err != nil {
		log.Fatalf("failed to create quiz: %v", err)
	}
	fmt.Printf("quiz %q created (id %d)\n", quiz.Title, quiz.ID)
}
