package main

import (
	"context"
	"log"
	"os"
	"time"

	"unitutor/internal/database"
	"unitutor/internal/domain"
	"unitutor/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "unitutor.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM ratings")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM tickets")
	db.Exec("DELETE FROM profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	sessions := repository.NewSessionRepository(db)

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		OpenID:       uuid.NewString(),
		Name:         "Admin",
		Email:        "admin@unitutor.app",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@unitutor.app / admin123")

	studentHash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	student := &domain.User{
		OpenID:         uuid.NewString(),
		Name:           "Sam Lee",
		Email:          "sam@student.edu",
		PasswordHash:   string(studentHash),
		Role:           domain.RoleUser,
		PreferredRoles: domain.PreferStudent,
	}
	if err := users.Create(ctx, student); err != nil {
		log.Fatal(err)
	}

	tutorHash, _ := bcrypt.GenerateFromPassword([]byte("tutor123"), bcrypt.DefaultCost)
	tutor := &domain.User{
		OpenID:         uuid.NewString(),
		Name:           "Maya Chen",
		Email:          "maya@student.edu",
		PasswordHash:   string(tutorHash),
		Role:           domain.RoleUser,
		PreferredRoles: domain.PreferBoth,
	}
	if err := users.Create(ctx, tutor); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating profiles...")

	if err := profiles.Upsert(ctx, &domain.Profile{
		UserID:   student.ID,
		UserRole: domain.ProfileStudent,
		Age:      19,
		Year:     "Sophomore",
		Major:    "Economics",
		Courses:  []string{"ECON 101", "MATH 120"},
	}); err != nil {
		log.Fatal(err)
	}

	if err := profiles.Upsert(ctx, &domain.Profile{
		UserID:   tutor.ID,
		UserRole: domain.ProfileTutor,
		Age:      21,
		Year:     "Senior",
		Major:    "Mathematics",
		Bio:      "Calculus and linear algebra tutor, three years of experience.",
		PriceMin: 20,
		PriceMax: 35,
		Courses:  []string{"MATH 120", "MATH 220", "STAT 200"},
		Availability: []domain.AvailabilitySlot{
			{WeekIndex: 0, DayOfWeek: 1, HourBlock: "16:00-17:00", IsBookable: true},
			{WeekIndex: 0, DayOfWeek: 3, HourBlock: "16:00-17:00", IsBookable: true},
		},
	}); err != nil {
		log.Fatal(err)
	}

	log.Println("Creating a demo session...")

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	sess := &domain.Session{
		StudentID: student.ID,
		TutorID:   tutor.ID,
		Course:    "MATH 120",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.SessionPending,
	}
	if err := sessions.Create(ctx, sess); err != nil {
		log.Fatal(err)
	}

	log.Println("Seed complete.")
	log.Println("  student: sam@student.edu / student123")
	log.Println("  tutor:   maya@student.edu / tutor123")
}
