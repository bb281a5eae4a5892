package errs

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrEmailAlreadyExists = errors.New("email already exists")

var ErrFetchUsers = errors.New("Failed to fetch users.")
var ErrFetchUsersPages = errors.New("Failed to fetch total number of users.")
var ErrFetchUser = errors.New("Failed to fetch user.")
