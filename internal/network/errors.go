package network

import "errors"

var (
	// ErrInvalidNode indicates a location label that is not part of the network.
	ErrInvalidNode = errors.New("unknown location")

	// ErrNotFound indicates that no road connects the requested locations.
	ErrNotFound = errors.New("road not found")

	// ErrInvalidWeight indicates a travel time that is zero, negative, NaN or infinite.
	ErrInvalidWeight = errors.New("travel time must be a positive finite number")

	// ErrDuplicateRoad indicates seed data with more than one road for the same connection.
	ErrDuplicateRoad = errors.New("duplicate road")

	// ErrSelfLoop indicates a seed road whose endpoints are the same location.
	ErrSelfLoop = errors.New("road starts and ends at the same location")

	// ErrEmptyNetwork indicates seed data without any location.
	ErrEmptyNetwork = errors.New("network has no locations")
)
