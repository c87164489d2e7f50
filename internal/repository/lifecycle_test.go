package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"unitutor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:lifecycle_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func seedParties(t *testing.T, db *gorm.DB) (student, tutor *domain.User) {
	t.Helper()
	ctx := context.Background()
	users := NewUserRepository(db)

	student = &domain.User{OpenID: "open-student", Name: "Student", Email: "s@test.edu", Role: domain.RoleUser}
	tutor = &domain.User{OpenID: "open-tutor", Name: "Tutor", Email: "t@test.edu", Role: domain.RoleUser}
	require.NoError(t, users.Create(ctx, student))
	require.NoError(t, users.Create(ctx, tutor))

	profiles := NewProfileRepository(db)
	require.NoError(t, profiles.Upsert(ctx, &domain.Profile{
		UserID: student.ID, UserRole: domain.ProfileStudent, Age: 19,
	}))
	require.NoError(t, profiles.Upsert(ctx, &domain.Profile{
		UserID: tutor.ID, UserRole: domain.ProfileTutor, Age: 22, Bio: "tutor",
	}))
	return student, tutor
}

func seedSession(t *testing.T, db *gorm.DB, studentID, tutorID int64, status domain.SessionStatus) *domain.Session {
	t.Helper()
	sessions := NewSessionRepository(db)
	start := time.Now().Add(-2 * time.Hour)
	sess := &domain.Session{
		StudentID: studentID,
		TutorID:   tutorID,
		Course:    "MATH 120",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.SessionPending,
	}
	require.NoError(t, sessions.Create(context.Background(), sess))
	if status != domain.SessionPending {
		require.NoError(t, db.Model(&sessionModel{}).
			Where("id = ?", sess.ID).
			Update("status", string(status)).Error)
		sess.Status = status
	}
	return sess
}

func TestMarkCompletedReconciliation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionConfirmed)

	sessions := NewSessionRepository(db)

	// first flag leaves the session CONFIRMED
	updated, err := sessions.MarkCompleted(ctx, sess.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.StudentCompleted)
	assert.False(t, updated.TutorCompleted)
	assert.Equal(t, domain.SessionConfirmed, updated.Status)

	// same party again is a no-op
	updated, err = sessions.MarkCompleted(ctx, sess.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionConfirmed, updated.Status)

	// second party flips to PENDING_RATING
	updated, err = sessions.MarkCompleted(ctx, sess.ID, false)
	require.NoError(t, err)
	assert.True(t, updated.TutorCompleted)
	assert.Equal(t, domain.SessionPendingRating, updated.Status)
}

func TestMarkCompletedRequiresConfirmed(t *testing.T) {
	db := setupTestDB(t)
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionPending)

	sessions := NewSessionRepository(db)
	_, err := sessions.MarkCompleted(context.Background(), sess.ID, true)
	assert.ErrorIs(t, err, ErrWrongStatus)
}

func TestRatingReconciliationClosesAndAwardsCredits(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionPendingRating)

	ratings := NewRatingRepository(db)
	profiles := NewProfileRepository(db)
	sessions := NewSessionRepository(db)

	closed, err := ratings.SubmitForSession(ctx, &domain.Rating{
		SessionID:  sess.ID,
		RaterID:    student.ID,
		TargetID:   tutor.ID,
		Score:      5,
		Visibility: domain.RatingPublic,
	}, true)
	require.NoError(t, err)
	assert.False(t, closed)

	// duplicate submission by the same rater is rejected
	_, err = ratings.SubmitForSession(ctx, &domain.Rating{
		SessionID:  sess.ID,
		RaterID:    student.ID,
		TargetID:   tutor.ID,
		Score:      4,
		Visibility: domain.RatingPublic,
	}, true)
	assert.ErrorIs(t, err, ErrAlreadyRated)

	closed, err = ratings.SubmitForSession(ctx, &domain.Rating{
		SessionID:  sess.ID,
		RaterID:    tutor.ID,
		TargetID:   student.ID,
		Score:      4,
		Visibility: domain.RatingPrivate,
	}, false)
	require.NoError(t, err)
	assert.True(t, closed)

	final, err := sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionClosed, final.Status)

	sp, err := profiles.GetByUserAndRole(ctx, student.ID, domain.ProfileStudent)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditPointsPerSession, sp.CreditPoints)

	tp, err := profiles.GetByUserAndRole(ctx, tutor.ID, domain.ProfileTutor)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditPointsPerSession, tp.CreditPoints)

	n, err := sessions.CountClosedForUser(ctx, student.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSubmitForSessionRequiresPendingRating(t *testing.T) {
	db := setupTestDB(t)
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionConfirmed)

	ratings := NewRatingRepository(db)
	_, err := ratings.SubmitForSession(context.Background(), &domain.Rating{
		SessionID:  sess.ID,
		RaterID:    student.ID,
		TargetID:   tutor.ID,
		Score:      5,
		Visibility: domain.RatingPublic,
	}, true)
	assert.ErrorIs(t, err, ErrWrongStatus)
}

func TestCancellationRatingSetOnce(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionConfirmed)

	sessions := NewSessionRepository(db)
	ok, err := sessions.Cancel(ctx, sess.ID, tutor.ID, "emergency")
	require.NoError(t, err)
	require.True(t, ok)

	ratings := NewRatingRepository(db)
	err = ratings.SubmitForCancellation(ctx, &domain.Rating{
		SessionID:  sess.ID,
		RaterID:    student.ID,
		TargetID:   tutor.ID,
		Score:      2,
		Visibility: domain.RatingPublic,
	})
	require.NoError(t, err)

	// second attempt is rejected
	err = ratings.SubmitForCancellation(ctx, &domain.Rating{
		SessionID:  sess.ID,
		RaterID:    student.ID,
		TargetID:   tutor.ID,
		Score:      1,
		Visibility: domain.RatingPublic,
	})
	assert.ErrorIs(t, err, ErrAlreadyRated)

	final, err := sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, final.CancellationRated)
	require.NotNil(t, final.CancelledBy)
	assert.Equal(t, tutor.ID, *final.CancelledBy)
}

func TestCancelConditionalOnActiveStatus(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionClosed)

	sessions := NewSessionRepository(db)
	ok, err := sessions.Cancel(ctx, sess.ID, student.ID, "late")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlagOverdueDisputes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sessions := NewSessionRepository(db)

	// half-completed session well past its end
	halfDone := seedSession(t, db, student.ID, tutor.ID, domain.SessionConfirmed)
	_, err := sessions.MarkCompleted(ctx, halfDone.ID, true)
	require.NoError(t, err)

	// untouched confirmed session, also past its end
	untouched := seedSession(t, db, student.ID, tutor.ID, domain.SessionConfirmed)

	flagged, err := sessions.FlagOverdueDisputes(ctx, time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, flagged)

	s1, err := sessions.GetByID(ctx, halfDone.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionDisputed, s1.Status)

	s2, err := sessions.GetByID(ctx, untouched.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionConfirmed, s2.Status)
}

func TestFullSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionPending)

	sessions := NewSessionRepository(db)
	ratings := NewRatingRepository(db)
	profiles := NewProfileRepository(db)

	ok, err := sessions.UpdateStatusIf(ctx, sess.ID, domain.SessionPending, domain.SessionConfirmed)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = sessions.MarkCompleted(ctx, sess.ID, true)
	require.NoError(t, err)
	after, err := sessions.MarkCompleted(ctx, sess.ID, false)
	require.NoError(t, err)
	require.Equal(t, domain.SessionPendingRating, after.Status)

	_, err = ratings.SubmitForSession(ctx, &domain.Rating{
		SessionID: sess.ID, RaterID: student.ID, TargetID: tutor.ID,
		Score: 5, Visibility: domain.RatingPublic,
	}, true)
	require.NoError(t, err)
	closed, err := ratings.SubmitForSession(ctx, &domain.Rating{
		SessionID: sess.ID, RaterID: tutor.ID, TargetID: student.ID,
		Score: 4, Visibility: domain.RatingPrivate,
	}, false)
	require.NoError(t, err)
	require.True(t, closed)

	final, err := sessions.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionClosed, final.Status)

	tp, err := profiles.GetByUserAndRole(ctx, tutor.ID, domain.ProfileTutor)
	require.NoError(t, err)
	assert.Equal(t, domain.CreditPointsPerSession, tp.CreditPoints)

	avg, err := ratings.AveragePublicScore(ctx, tutor.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 0.001)
}

func TestUpdateStatusIfIsConditional(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	student, tutor := seedParties(t, db)
	sess := seedSession(t, db, student.ID, tutor.ID, domain.SessionPending)

	sessions := NewSessionRepository(db)

	ok, err := sessions.UpdateStatusIf(ctx, sess.ID, domain.SessionPending, domain.SessionConfirmed)
	require.NoError(t, err)
	assert.True(t, ok)

	// second transition from PENDING no longer matches
	ok, err = sessions.UpdateStatusIf(ctx, sess.ID, domain.SessionPending, domain.SessionConfirmed)
	require.NoError(t, err)
	assert.False(t, ok)
}
