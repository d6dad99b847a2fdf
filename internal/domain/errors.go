package domain

import "errors"

var (
	// ErrPlaceNotResolved место не найдено, нет часового пояса или провайдер недоступен
	ErrPlaceNotResolved = errors.New("place not resolved")
	// ErrChartCalculation эфемериды не смогли посчитать карту
	ErrChartCalculation = errors.New("chart calculation failed")
	ErrSessionNotFound  = errors.New("session not found")
)

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
