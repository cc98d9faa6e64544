package repository

import "errors"

// ErrNotFound строка не найдена или принадлежит другому преподавателю
var ErrNotFound = errors.New("not found")
