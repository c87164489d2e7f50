package repository

import (
	"context"
	"time"

	"unitutor/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

type ratingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	SessionID  int64     `gorm:"column:session_id;uniqueIndex:idx_ratings_session_rater"`
	RaterID    int64     `gorm:"column:rater_id;uniqueIndex:idx_ratings_session_rater"`
	TargetID   int64     `gorm:"column:target_id;index"`
	Score      int       `gorm:"column:score"`
	Comment    *string   `gorm:"column:comment;type:text"`
	Visibility string    `gorm:"column:visibility;size:10;default:public"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (ratingModel) TableName() string { return "ratings" }

func toDomainRating(m ratingModel) *domain.Rating {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return &domain.Rating{
		ID:         m.ID,
		SessionID:  m.SessionID,
		RaterID:    m.RaterID,
		TargetID:   m.TargetID,
		Score:      m.Score,
		Comment:    comment,
		Visibility: domain.RatingVisibility(m.Visibility),
		CreatedAt:  m.CreatedAt,
	}
}

func toRatingModel(r *domain.Rating) ratingModel {
	var comment *string
	if r.Comment != "" {
		v := r.Comment
		comment = &v
	}
	return ratingModel{
		ID:         r.ID,
		SessionID:  r.SessionID,
		RaterID:    r.RaterID,
		TargetID:   r.TargetID,
		Score:      r.Score,
		Comment:    comment,
		Visibility: string(r.Visibility),
		CreatedAt:  r.CreatedAt,
	}
}

func (r *RatingRepository) GetBySessionAndRater(ctx context.Context, sessionID, raterID int64) (*domain.Rating, error) {
	var m ratingModel
	tx := r.db.WithContext(ctx).
		Where("session_id = ? AND rater_id = ?", sessionID, raterID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRating(m), nil
}

func (r *RatingRepository) GetForTarget(ctx context.Context, targetID int64, visibility *domain.RatingVisibility) ([]domain.Rating, error) {
	q := r.db.WithContext(ctx).Where("target_id = ?", targetID)
	if visibility != nil {
		q = q.Where("visibility = ?", string(*visibility))
	}
	var ms []ratingModel
	if err := q.Order("created_at desc").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Rating, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRating(m))
	}
	return out, nil
}

// AveragePublicScore is the tutor reputation shown in search results.
func (r *RatingRepository) AveragePublicScore(ctx context.Context, targetID int64) (float64, error) {
	var avg *float64
	tx := r.db.WithContext(ctx).
		Model(&ratingModel{}).
		Select("AVG(score)").
		Where("target_id = ? AND visibility = ?", targetID, string(domain.RatingPublic)).
		Scan(&avg)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// SubmitForSession records one party's rating and reconciles the session
// state in a single transaction: the session row is locked, the rater's
// rated flag is set, and when both flags are up the session goes CLOSED and
// both parties' profiles earn their credit points. The award therefore
// happens exactly once per session.
func (r *RatingRepository) SubmitForSession(ctx context.Context, rating *domain.Rating, raterIsStudent bool) (closed bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess sessionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sess, rating.SessionID).Error; err != nil {
			return err
		}
		if sess.Status != string(domain.SessionPendingRating) {
			return ErrWrongStatus
		}
		if raterIsStudent && sess.StudentRated {
			return ErrAlreadyRated
		}
		if !raterIsStudent && sess.TutorRated {
			return ErrAlreadyRated
		}

		m := toRatingModel(rating)
		if err := tx.Create(&m).Error; err != nil {
			if IsUniqueViolation(err) {
				return ErrAlreadyRated
			}
			return err
		}
		*rating = *toDomainRating(m)

		if raterIsStudent {
			sess.StudentRated = true
		} else {
			sess.TutorRated = true
		}
		if sess.StudentRated && sess.TutorRated {
			sess.Status = string(domain.SessionClosed)
			closed = true
		}
		sess.UpdatedAt = time.Now()
		if err := tx.Save(&sess).Error; err != nil {
			return err
		}

		if closed {
			if err := addCreditPoints(tx, sess.StudentID, domain.ProfileStudent); err != nil {
				return err
			}
			if err := addCreditPoints(tx, sess.TutorID, domain.ProfileTutor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return closed, nil
}

// SubmitForCancellation records the non-cancelling party's public rating of
// a cancellation; the set-once flag and the rating row commit together.
func (r *RatingRepository) SubmitForCancellation(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess sessionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sess, rating.SessionID).Error; err != nil {
			return err
		}
		if sess.Status != string(domain.SessionCancelled) {
			return ErrWrongStatus
		}
		if sess.CancellationRated {
			return ErrAlreadyRated
		}

		m := toRatingModel(rating)
		if err := tx.Create(&m).Error; err != nil {
			if IsUniqueViolation(err) {
				return ErrAlreadyRated
			}
			return err
		}
		*rating = *toDomainRating(m)

		sess.CancellationRated = true
		sess.UpdatedAt = time.Now()
		return tx.Save(&sess).Error
	})
}

func addCreditPoints(tx *gorm.DB, userID int64, role domain.ProfileRole) error {
	// a party without a profile row earns nothing
	return tx.Model(&profileModel{}).
		Where("user_id = ? AND user_role = ?", userID, string(role)).
		Update("credit_points",
			gorm.Expr("credit_points + ?", domain.CreditPointsPerSession)).Error
}
