package service

import "context"

// IAlerterService служебные уведомления разработчикам (сбои расчёта, упавшие джобы)
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
