package chat

import "errors"

var (
	// ErrRestaurantNotFound indicates an unknown or inactive restaurant.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrEmptyMessage indicates a blank customer message.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrSpeechDisabled indicates speech features are off for the restaurant.
	ErrSpeechDisabled = errors.New("speech is disabled for this restaurant")
)
