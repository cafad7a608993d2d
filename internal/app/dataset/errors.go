// internal/app/dataset/errors.go
package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest возвращается при некорректных параметрах страницы
	ErrInvalidRequest = errors.New("invalid page request")

	// ErrDatasetNotFound возвращается, если датасет с таким именем не загружен
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrRecordNotFound возвращается при обращении к несуществующей строке
	ErrRecordNotFound = errors.New("record not found")
)

// LoadError представляет фатальную ошибку загрузки датасета
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrorf(path, format string, args ...interface{}) *LoadError {
	return &LoadError{Path: path, Err: fmt.Errorf(format, args...)}
}

func invalidRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
