package crud

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// TweetService manages Tweets.
// It implements the domain.TweetService interface.
type TweetService struct {
	tweetValidator
}

// tweetValidator runs validations on incoming Tweet data.
// On success, it passes the data on to tweetGorm.
// Otherwise, it returns the error of the validation that has failed.
type tweetValidator struct {
	tweetGorm
}

// tweetGorm runs CRUD operations on the database using incoming Tweet data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type tweetGorm struct {
	db *gorm.DB
}

// NewTweetService returns an instance of TweetService.
func NewTweetService(db *gorm.DB) *TweetService {
	return &TweetService{
		tweetValidator{
			tweetGorm{
				db: db,
			},
		},
	}
}

// Ensure the TweetService struct properly implements the domain.TweetService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.TweetService = &TweetService{}

// CreateTweet runs validations needed for creating new Tweet database records.
// Empty content is allowed, matching the original form behavior.
func (tv *tweetValidator) CreateTweet(tweet *domain.Tweet) error {
	err := runTweetValFns(tweet,
		tv.userIdValid,
		tv.contentNormalize,
		tv.contentMaxLength)
	if err != nil {
		return err
	}
	return tv.tweetGorm.Create(tweet)
}

// DeleteTweet deletes a tweet after checking that the requesting user owns it.
func (tv *tweetValidator) DeleteTweet(tweetID, requestingUserID int) error {
	tweet, err := tv.tweetGorm.ByID(tweetID)
	if err != nil {
		return err
	}
	if tweet.UserID != requestingUserID {
		return errs.Errorf(errs.EUNAUTHORIZED, "You are not allowed to delete this tweet.")
	}
	return tv.tweetGorm.Delete(tweet)
}

// runTweetValFns runs any number of functions of type tweetValFn on the passed in Tweet object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runTweetValFns(tweet *domain.Tweet, fns ...tweetValFn) error {
	for _, fn := range fns {
		if err := fn(tweet); err != nil {
			return err
		}
	}
	return nil
}

// A tweetValFn is any function that takes in a pointer to a domain.Tweet object and returns an error.
type tweetValFn = func(tweet *domain.Tweet) error

// contentNormalize trims surrounding whitespace from the Tweet's content.
func (tv *tweetValidator) contentNormalize(tweet *domain.Tweet) error {
	tweet.Content = strings.TrimSpace(tweet.Content)
	return nil
}

// contentMaxLength makes sure that the Tweet's content does not exceed the maximum content length.
func (tv *tweetValidator) contentMaxLength(tweet *domain.Tweet) error {
	if utf8.RuneCountInString(tweet.Content) > domain.MaxTweetLength {
		return errs.Errorf(errs.EINVALID, "Tweet content max length is %d characters.", domain.MaxTweetLength)
	}
	return nil
}

// userIdValid ensures that the userId is not empty.
func (tv *tweetValidator) userIdValid(tweet *domain.Tweet) error {
	if tweet.UserID <= 0 {
		return errs.Errorf(errs.EINVALID, "A user ID is required.")
	}
	return nil
}

// ByID retrieves a single Tweet by ID, along with its author.
func (tg *tweetGorm) ByID(id int) (*domain.Tweet, error) {
	var tweet domain.Tweet
	err := tg.db.
		Preload("User").
		First(&tweet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The tweet does not exist.")
		}
		return nil, err
	}
	return &tweet, nil
}

// ByUserID retrieves all tweets of a single user, newest first.
func (tg *tweetGorm) ByUserID(userID int) ([]domain.Tweet, error) {
	var tweets []domain.Tweet
	err := tg.db.
		Where("user_id = ?", userID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// ListFor retrieves all tweets authored by the given user or by any member
// of followedIDs, newest first. Ties on created_at are broken by descending
// id, so the ordering is stable across queries.
func (tg *tweetGorm) ListFor(userID int, followedIDs []int) ([]domain.Tweet, error) {
	ids := make([]int, 0, len(followedIDs)+1)
	ids = append(ids, userID)
	ids = append(ids, followedIDs...)

	var tweets []domain.Tweet
	err := tg.db.
		Where("user_id IN ?", ids).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&tweets).Error
	if err != nil {
		return nil, err
	}
	return tweets, nil
}

// Create stores the data from the Tweet object in a new database record.
// The User association is omitted, the author row already exists.
func (tg *tweetGorm) Create(tweet *domain.Tweet) error {
	if err := tg.db.Omit("User").Create(tweet).Error; err != nil {
		return err
	}
	return tg.db.Preload("User").First(tweet, "id = ?", tweet.ID).Error
}

// Delete permanently deletes a Tweet record, cascading to its likes.
// Both deletes run in one transaction so a failure leaves no partial state.
func (tg *tweetGorm) Delete(tweet *domain.Tweet) error {
	return tg.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tweet_id = ?", tweet.ID).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(tweet).Error
	})
}
