package domain

import "errors"

var (
	MessageMealNotFound = "Meal not found"

	ErrMealNotFound = errors.New("meal not found")
)
