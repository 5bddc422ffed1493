package crud

import (
	"errors"

	"gorm.io/gorm"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// FollowService manages the follow graph.
// It implements the domain.FollowService interface.
type FollowService struct {
	followValidator
}

// followValidator runs validations on incoming Follow data.
// On success, it passes the data on to followGorm.
// Otherwise, it returns the error of the validation that has failed.
type followValidator struct {
	followGorm
}

// followGorm runs CRUD operations on the database using incoming Follow data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type followGorm struct {
	db *gorm.DB
}

// NewFollowService returns an instance of FollowService.
func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{
		followValidator{
			followGorm{
				db: db,
			},
		},
	}
}

// Ensure the FollowService struct properly implements the domain.FollowService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.FollowService = &FollowService{}

// Follow runs validations needed for creating new Follow database records.
func (fv *followValidator) Follow(followerID, followedID int) error {
	follow := domain.Follow{FollowerID: followerID, FollowedID: followedID}
	err := runFollowValFns(&follow,
		fv.followerIdValid,
		fv.followedIsNotFollower,
		fv.followedUserExists)
	if err != nil {
		return err
	}
	return fv.followGorm.Create(&follow)
}

// Unfollow runs validations needed for deleting existing Follow database records.
func (fv *followValidator) Unfollow(followerID, followedID int) error {
	follow := domain.Follow{FollowerID: followerID, FollowedID: followedID}
	err := runFollowValFns(&follow, fv.followerIdValid)
	if err != nil {
		return err
	}
	return fv.followGorm.Delete(&follow)
}

// runFollowValFns runs any number of functions of type followValFn on the passed in Follow object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runFollowValFns(follow *domain.Follow, fns ...followValFn) error {
	for _, fn := range fns {
		if err := fn(follow); err != nil {
			return err
		}
	}
	return nil
}

// A followValFn is any function that takes in a pointer to a domain.Follow object and returns an error.
type followValFn func(follow *domain.Follow) error

// followerIdValid ensures that the follower's user ID is not empty.
func (fv *followValidator) followerIdValid(follow *domain.Follow) error {
	if follow.FollowerID <= 0 {
		return errs.Errorf(errs.EINVALID, "A follower user ID is required.")
	}
	return nil
}

// followedIsNotFollower makes sure that users don't follow themselves.
func (fv *followValidator) followedIsNotFollower(follow *domain.Follow) error {
	if follow.FollowerID == follow.FollowedID {
		return errs.Errorf(errs.EINVALID, "You cannot follow yourself.")
	}
	return nil
}

// followedUserExists makes sure that the user to be followed actually exists.
func (fv *followValidator) followedUserExists(follow *domain.Follow) error {
	err := fv.db.First(&domain.User{}, "id = ?", follow.FollowedID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.Errorf(errs.ENOTFOUND, "The user to be followed does not exist.")
		}
		return err
	}
	return nil
}

// Create stores the edge in a new database record. Creating an edge that
// already exists is a no-op, keeping Follow idempotent.
func (fg *followGorm) Create(follow *domain.Follow) error {
	err := fg.db.
		Where("follower_id = ? AND followed_id = ?", follow.FollowerID, follow.FollowedID).
		First(&domain.Follow{}).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return fg.db.Create(follow).Error
}

// Delete removes the edge matching the Follow object. Deleting an edge that
// doesn't exist is a no-op, keeping Unfollow idempotent.
func (fg *followGorm) Delete(follow *domain.Follow) error {
	return fg.db.
		Where("follower_id = ? AND followed_id = ?", follow.FollowerID, follow.FollowedID).
		Delete(&domain.Follow{}).Error
}

// IsFollowing returns whether the edge (followerID -> followedID) exists.
func (fg *followGorm) IsFollowing(followerID, followedID int) (bool, error) {
	var count int64
	err := fg.db.Model(&domain.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// Following returns the users that the given user follows.
func (fg *followGorm) Following(userID int) ([]domain.User, error) {
	var users []domain.User
	err := fg.db.
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Followers returns the users that follow the given user.
func (fg *followGorm) Followers(userID int) ([]domain.User, error) {
	var users []domain.User
	err := fg.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FollowingIDs returns just the IDs of the users that the given user follows.
// The feed uses this to build its viewing set without loading full users.
func (fg *followGorm) FollowingIDs(userID int) ([]int, error) {
	var ids []int
	err := fg.db.Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// CountFollowing returns the number of users that the given user follows.
// The count is computed live from the edge table, there is no counter field.
func (fg *followGorm) CountFollowing(userID int) (int, error) {
	var count int64
	err := fg.db.Model(&domain.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

// CountFollowers returns the number of users that follow the given user.
func (fg *followGorm) CountFollowers(userID int) (int, error) {
	var count int64
	err := fg.db.Model(&domain.Follow{}).
		Where("followed_id = ?", userID).
		Count(&count).Error
	return int(count), err
}
