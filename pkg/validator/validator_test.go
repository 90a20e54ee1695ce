package validator

import "testing"

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Gender string `validate:"required,oneof=M F"`
	Rating int    `validate:"min=1,max=5"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{Email: "pat@clinic.test", Gender: "F", Rating: 4}
	if err := cv.Validate(req); err != nil {
		t.Errorf("Validate returned %v for a valid struct", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	req := sampleRequest{Email: "not-an-email", Gender: "X", Rating: 0}

	err := cv.Validate(req)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := cv.FormatValidationErrors(err)
	if fields["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", fields["Email"])
	}
	if fields["Gender"] != "Gender must be one of: M F" {
		t.Errorf("Gender message = %q", fields["Gender"])
	}
	if fields["Rating"] != "Rating must be at least 1 characters" {
		t.Errorf("Rating message = %q", fields["Rating"])
	}
}

func TestFormatValidationErrorsOnForeignError(t *testing.T) {
	cv := NewValidator()
	fields := cv.FormatValidationErrors(errTest{})
	if len(fields) != 0 {
		t.Errorf("expected empty map for a non-validation error, got %v", fields)
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
