package service

import (
	"errors"

	"finsort/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = repository.ErrNotFound
)
