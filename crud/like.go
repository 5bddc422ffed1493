package crud

import (
	"errors"

	"gorm.io/gorm"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// LikeService manages Likes. It owns the likes_count invariant: every create
// or delete of a Like row adjusts the tweet's counter by an atomic delta in
// the same transaction. It implements the domain.LikeService interface.
type LikeService struct {
	likeValidator
}

// likeValidator runs validations on incoming Like data.
// On success, it passes the data on to likeGorm.
// Otherwise, it returns the error of the validation that has failed.
type likeValidator struct {
	likeGorm
}

// likeGorm runs CRUD operations on the database using incoming Like data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type likeGorm struct {
	db *gorm.DB
}

// NewLikeService returns an instance of LikeService.
func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{
		likeValidator{
			likeGorm{
				db: db,
			},
		},
	}
}

// Ensure the LikeService struct properly implements the domain.LikeService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.LikeService = &LikeService{}

// ToggleLike runs validations needed for toggling a Like.
func (lv *likeValidator) ToggleLike(userID, tweetID int) (bool, int, error) {
	like := domain.Like{UserID: userID, TweetID: tweetID}
	if err := runLikeValFns(&like, lv.userIdValid); err != nil {
		return false, 0, err
	}
	return lv.likeGorm.Toggle(userID, tweetID)
}

// runLikeValFns runs any number of functions of type likeValFn on the passed in Like object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runLikeValFns(like *domain.Like, fns ...likeValFn) error {
	for _, fn := range fns {
		if err := fn(like); err != nil {
			return err
		}
	}
	return nil
}

// A likeValFn is any function that takes in a pointer to a domain.Like object and returns an error.
type likeValFn func(like *domain.Like) error

// userIdValid ensures that the userId is not empty.
func (lv *likeValidator) userIdValid(like *domain.Like) error {
	if like.UserID <= 0 {
		return errs.Errorf(errs.EINVALID, "A user ID is required.")
	}
	return nil
}

// Toggle creates the Like if it doesn't exist and deletes it if it does.
// The tweet's likes_count is adjusted with a SQL-side delta in the same
// transaction as the Like row write. It is never read, modified and written
// back from Go, so concurrent toggles on the same tweet can't lose updates.
func (lg *likeGorm) Toggle(userID, tweetID int) (bool, int, error) {
	var liked bool
	var likesCount int
	err := lg.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&domain.Tweet{}, "id = ?", tweetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.Errorf(errs.ENOTFOUND, "The tweet does not exist.")
			}
			return err
		}

		var like domain.Like
		err := tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Tweet{}).Where("id = ?", tweetID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like = domain.Like{UserID: userID, TweetID: tweetID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.Tweet{}).Where("id = ?", tweetID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
			liked = true
		default:
			return err
		}

		var tweet domain.Tweet
		if err := tx.First(&tweet, "id = ?", tweetID).Error; err != nil {
			return err
		}
		likesCount = tweet.LikesCount
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likesCount, nil
}

// IsLikedBy returns whether the given user likes the given tweet.
func (lg *likeGorm) IsLikedBy(userID, tweetID int) (bool, error) {
	var count int64
	err := lg.db.Model(&domain.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error
	return count > 0, err
}

// LikedTweetIDs returns the subset of tweetIDs that the given user likes,
// as a set. A single query, regardless of how many tweets are passed in.
func (lg *likeGorm) LikedTweetIDs(userID int, tweetIDs []int) (map[int]bool, error) {
	liked := make(map[int]bool, len(tweetIDs))
	if len(tweetIDs) == 0 {
		return liked, nil
	}
	var ids []int
	err := lg.db.Model(&domain.Like{}).
		Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
		Pluck("tweet_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
