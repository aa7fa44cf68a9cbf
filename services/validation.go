package services

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	tagTrainNumber = "required,len=6,number"
	tagTrainName   = "required,max=100,trainname"
	tagStationCode = "required,len=6,alphanum"
	tagPlaceName   = "required,max=100"
	tagUsername    = "required,username"
	tagEmail       = "required,email"
	tagMobile      = "required,len=10,number"
	tagNationalID  = "required,len=12,number"
	tagPassword    = "required,password"
	tagDate        = "required,datetime=2006-01-02"
	tagClock       = "required,datetime=15:04"
	tagGender      = "required,oneof=male female other"
	tagPersonName  = "required,max=100"
	tagIDNumber    = "required,max=20,alphanum"
)

var (
	trainNameRe = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	usernameRe  = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "trainname", matches(trainNameRe))
	mustRegister(v, "username", matches(usernameRe))
	mustRegister(v, "password", strongPassword)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// strongPassword requires 8+ characters with upper, lower, digit and special classes
func strongPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// check validates one value against a validator tag and reports msg on failure
func check(value, tag, msg string) error {
	if err := validate.Var(value, tag); err != nil {
		return invalid("%s", msg)
	}
	return nil
}

// checkOptional is check for fields that may be left empty
func checkOptional(value, tag, msg string) error {
	if value == "" {
		return nil
	}
	return check(value, tag, msg)
}

func normalizeStationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
