// Package actor carries the caller identity resolved by the transport layer.
package actor

import (
	"context"

	"stayledger/shared/constant"
)

type Actor struct {
	ID   string
	Role string
}

// System is used by background jobs (channel pulls, schedulers).
var System = Actor{ID: constant.RoleSystem, Role: constant.RoleSystem}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin || a.Role == constant.RoleSystem
}

func With(ctx context.Context, a Actor) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, a.ID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, a.Role)
}

func FromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{ID: id, Role: role}
}
