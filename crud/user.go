package crud

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"hash"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wtfTimeline/auth"
	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

// UserService manages Users. It also contains the part of the authentication
// system that handles database interactions and token hashing. It's basically
// the "backend" of the auth system, with http/auth.go dealing with requests,
// middleware and cookies being the "frontend".
// It implements the domain.UserService interface.
type UserService struct {
	userValidator
}

// userValidator runs validations on incoming User data.
// On success, it passes the data on to userGorm.
// Otherwise, it returns the error of the validation that has failed.
type userValidator struct {
	hmac          HMAC
	pepper        string
	emailRegex    *regexp.Regexp
	usernameRegex *regexp.Regexp
	userGorm
}

// userGorm runs CRUD operations on the database using incoming User data.
// It assumes that data has been validated. On success, it returns nil.
// Otherwise, it returns the error of the operation that has failed.
type userGorm struct {
	db *gorm.DB
}

// NewUserService returns an instance of UserService.
func NewUserService(db *gorm.DB, pepper, hmacKey string) *UserService {
	return &UserService{
		userValidator{
			hmac:          newHMAC(hmacKey),
			pepper:        pepper,
			emailRegex:    regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,16}$`),
			usernameRegex: regexp.MustCompile(`^[a-z0-9_]{1,30}$`),
			userGorm: userGorm{
				db: db,
			},
		},
	}
}

// Ensure the UserService struct properly implements the domain.UserService interface.
// If it does not, then this expression becomes invalid and won't compile.
var _ domain.UserService = &UserService{}

// Authenticate checks a submitted email address and password for existence and correctness.
func (uv *userValidator) Authenticate(email, password string) (*domain.User, error) {
	found, err := uv.userGorm.ByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	// Append the pepper to the submitted password, hash it, and compare the
	// result to the password hash stored in the user's database record.
	err = bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password+uv.pepper))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errs.Errorf(errs.EINVALID, "The password is incorrect.")
		}
		return nil, err
	}
	return found, nil
}

// ByRemember hashes a submitted remember token and passes the HASHED token
// on to userGorm.ByRemember, which will look it up in the database.
func (uv *userValidator) ByRemember(token string) (*domain.User, error) {
	user := domain.User{
		Remember: token,
	}
	if err := runUserValFns(&user, uv.rememberHmac); err != nil {
		return nil, err
	}
	return uv.userGorm.ByRemember(user.RememberHash)
}

// Create runs validations needed for creating new User database records.
// It will create a remember token if none is provided.
func (uv *userValidator) Create(user *domain.User) error {
	err := runUserValFns(user,
		uv.usernameNormalize,
		uv.usernameRequired,
		uv.usernameFormat,
		uv.usernameIsAvail,
		uv.passwordRequired,
		uv.passwordMinLength,
		uv.passwordBcrypt,
		uv.passwordHashRequired,
		uv.rememberSetIfUnset,
		uv.rememberMinBytes,
		uv.rememberHmac,
		uv.rememberHashRequired,
		uv.emailNormalize,
		uv.emailRequired,
		uv.emailFormat,
		uv.emailIsAvail)
	if err != nil {
		return err
	}
	return uv.userGorm.Create(user)
}

// Update runs validations needed for updating a User record in the database.
// It will hash a remember token if one is provided (and will not return an
// error if none is).
func (uv *userValidator) Update(user *domain.User) error {
	err := runUserValFns(user,
		uv.usernameNormalize,
		uv.usernameRequired,
		uv.usernameFormat,
		uv.passwordMinLength,
		uv.passwordBcrypt,
		uv.passwordHashRequired,
		uv.rememberMinBytes,
		uv.rememberHmac,
		uv.rememberHashRequired,
		uv.emailNormalize,
		uv.emailRequired,
		uv.emailFormat,
		uv.emailIsAvail)
	if err != nil {
		return err
	}
	return uv.userGorm.Update(user)
}

// runUserValFns runs any number of functions of type userValFn on the passed in User object.
// If none of them returns an error, it returns nil. Otherwise, it returns the respective error.
func runUserValFns(user *domain.User, fns ...userValFn) error {
	for _, fn := range fns {
		if err := fn(user); err != nil {
			return err
		}
	}
	return nil
}

// A userValFn is any function that takes in a pointer to a domain.User object and returns an error.
type userValFn func(user *domain.User) error

// emailFormat makes sure that a provided email address matches a predefined regex pattern.
func (uv *userValidator) emailFormat(user *domain.User) error {
	if user.Email == "" {
		return nil
	}
	if !uv.emailRegex.MatchString(user.Email) {
		return errs.Errorf(errs.EINVALID, "The email address is invalid.")
	}
	return nil
}

// emailIsAvail makes sure that a provided email address is not yet taken.
func (uv *userValidator) emailIsAvail(user *domain.User) error {
	existing, err := uv.userGorm.ByEmail(user.Email)
	if errs.ErrorCode(err) == errs.ENOTFOUND {
		// Address is not taken.
		return nil
	}
	if err != nil {
		return err
	}
	if user.ID != existing.ID {
		// Email found, and the passed in user is not the owner of that email.
		return errs.Errorf(errs.ECONFLICT, "This email address is already taken.")
	}
	return nil
}

// emailNormalize converts the email to all lowercase and trims its whitespaces.
func (uv *userValidator) emailNormalize(user *domain.User) error {
	user.Email = strings.ToLower(user.Email)
	user.Email = strings.TrimSpace(user.Email)
	return nil
}

// emailRequired makes sure that the email is not the empty string.
func (uv *userValidator) emailRequired(user *domain.User) error {
	if user.Email == "" {
		return errs.Errorf(errs.EINVALID, "An email address is required.")
	}
	return nil
}

// usernameNormalize converts the username to all lowercase and trims its whitespaces.
func (uv *userValidator) usernameNormalize(user *domain.User) error {
	user.Username = strings.ToLower(user.Username)
	user.Username = strings.TrimSpace(user.Username)
	return nil
}

// usernameRequired makes sure that the username is not the empty string.
func (uv *userValidator) usernameRequired(user *domain.User) error {
	if user.Username == "" {
		return errs.Errorf(errs.EINVALID, "A username is required.")
	}
	return nil
}

// usernameFormat makes sure that the username only contains lowercase
// letters, digits and underscores, and is at most 30 characters long.
func (uv *userValidator) usernameFormat(user *domain.User) error {
	if !uv.usernameRegex.MatchString(user.Username) {
		return errs.Errorf(errs.EINVALID, "The username may only contain letters, digits and underscores (max 30).")
	}
	return nil
}

// usernameIsAvail makes sure that a provided username is not yet taken.
func (uv *userValidator) usernameIsAvail(user *domain.User) error {
	existing, err := uv.userGorm.ByUsername(user.Username)
	if errs.ErrorCode(err) == errs.ENOTFOUND {
		return nil
	}
	if err != nil {
		return err
	}
	if user.ID != existing.ID {
		return errs.Errorf(errs.ECONFLICT, "This username is already taken.")
	}
	return nil
}

// passwordBcrypt hashes a user's password with a predefined pepper.
// It bcrypts it, if the Password field is not the empty string.
// It then clears the password on the user object in memory for security reasons.
func (uv *userValidator) passwordBcrypt(user *domain.User) error {
	if user.Password == "" {
		return nil
	}
	pwBytes := []byte(user.Password + uv.pepper)
	hashedBytes, err := bcrypt.GenerateFromPassword(pwBytes, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashedBytes)
	user.Password = ""
	return nil
}

// passwordHashRequired makes sure that the user's password hash is not the empty string.
func (uv *userValidator) passwordHashRequired(user *domain.User) error {
	if user.PasswordHash == "" {
		return errs.Errorf(errs.EINVALID, "A password is required.")
	}
	return nil
}

// passwordMinLength makes sure that the user's password is at least 8 characters long.
func (uv *userValidator) passwordMinLength(user *domain.User) error {
	if user.Password == "" {
		return nil
	}
	if utf8.RuneCountInString(user.Password) < 8 {
		return errs.Errorf(errs.EINVALID, "The password must have at least 8 characters.")
	}
	return nil
}

// passwordRequired makes sure that the user's password is not the empty string.
func (uv *userValidator) passwordRequired(user *domain.User) error {
	if user.Password == "" {
		return errs.Errorf(errs.EINVALID, "A password is required.")
	}
	return nil
}

// rememberHashRequired makes sure the user's remember token hash is not the empty string.
func (uv *userValidator) rememberHashRequired(user *domain.User) error {
	if user.RememberHash == "" {
		return errs.Errorf(errs.EINTERNAL, "The remember token hash is missing.")
	}
	return nil
}

// rememberHmac creates the user's remember token hash, if a remember token has been provided.
func (uv *userValidator) rememberHmac(user *domain.User) error {
	if user.Remember == "" {
		return nil
	}
	user.RememberHash = uv.hmac.hash(user.Remember)
	return nil
}

// rememberMinBytes makes sure that the user's remember token is not too short.
func (uv *userValidator) rememberMinBytes(user *domain.User) error {
	if user.Remember == "" {
		return nil
	}
	n, err := auth.NBytes(user.Remember)
	if err != nil {
		return err
	}
	if n < auth.RememberTokenBytes {
		return errs.Errorf(errs.EINTERNAL, "The remember token is too short.")
	}
	return nil
}

// rememberSetIfUnset creates the user's remember token if none is provided.
func (uv *userValidator) rememberSetIfUnset(user *domain.User) error {
	if user.Remember != "" {
		return nil
	}
	token, err := auth.MakeRememberToken()
	if err != nil {
		return err
	}
	user.Remember = token
	return nil
}

// ByID retrieves a User database record by ID.
func (ug *userGorm) ByID(id int) (*domain.User, error) {
	var user domain.User
	err := ug.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The user does not exist.")
		}
		return nil, err
	}
	return &user, nil
}

// ByUsername retrieves a User database record by Username.
func (ug *userGorm) ByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := ug.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The user does not exist.")
		}
		return nil, err
	}
	return &user, nil
}

// ByEmail retrieves a User database record by Email.
func (ug *userGorm) ByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := ug.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The email address does not exist in our database.")
		}
		return nil, err
	}
	return &user, nil
}

// ByRemember retrieves a User database record by its hashed remember token.
// The authUser middleware calls this on every request, trying to identify a user
// by matching a request cookie's remember token to a hashed remember token in the database.
func (ug *userGorm) ByRemember(rememberHash string) (*domain.User, error) {
	var user domain.User
	err := ug.db.First(&user, "remember_hash = ?", rememberHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Errorf(errs.ENOTFOUND, "The user does not exist.")
		}
		return nil, err
	}
	return &user, nil
}

// Create stores the data from the User object in a new database record.
func (ug *userGorm) Create(user *domain.User) error {
	return ug.db.Create(user).Error
}

// Update saves changes to an existing user record in the database.
func (ug *userGorm) Update(user *domain.User) error {
	return ug.db.Save(user).Error
}

// HMAC is a wrapper around the crypto/hmac package making it easier to use.
type HMAC struct {
	hmac hash.Hash
}

// newHMAC creates and returns a new HMAC object.
func newHMAC(key string) HMAC {
	h := hmac.New(sha256.New, []byte(key))
	return HMAC{
		hmac: h,
	}
}

// hash hashes an input string using HMAC with the secret key
// provided when the HMAC object was created in NewUserService.
func (h HMAC) hash(input string) string {
	h.hmac.Reset()
	h.hmac.Write([]byte(input))
	b := h.hmac.Sum(nil)
	return base64.URLEncoding.EncodeToString(b)
}
