package app

import "context"

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
