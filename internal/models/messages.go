package models

const (
	msgBlank    = "This field may not be blank."
	msgRequired = "This field is required."
	msgMinOne   = "Ensure this value is greater than or equal to 1."
)
