package intercept

import (
	"context"
	"fmt"

	"github.com/orderdesk/apiserver/internal/services"
	"github.com/orderdesk/apiserver/types"
	"github.com/rs/zerolog"
)

// LoggingUsers logs every user-service call before and after it runs.
// Both lines carry only the method name and arguments; results are not
// logged at this layer.
type LoggingUsers struct {
	next services.Users
	log  zerolog.Logger
}

func NewLoggingUsers(next services.Users, log zerolog.Logger) *LoggingUsers {
	return &LoggingUsers{next: next, log: log}
}

func (l *LoggingUsers) before(method string, args ...any) {
	l.log.Info().
		Str("method", "UserService."+method).
		Str("args", fmt.Sprint(args...)).
		Msg("method starting")
}

func (l *LoggingUsers) after(method string, args ...any) {
	l.log.Info().
		Str("method", "UserService."+method).
		Str("args", fmt.Sprint(args...)).
		Msg("method finished")
}

func (l *LoggingUsers) List(ctx context.Context) ([]types.UserDTO, error) {
	l.before("List")
	dtos, err := l.next.List(ctx)
	l.after("List")
	return dtos, err
}

func (l *LoggingUsers) GetByID(ctx context.Context, id int) (types.UserDTO, error) {
	l.before("GetByID", id)
	dto, err := l.next.GetByID(ctx, id)
	l.after("GetByID", id)
	return dto, err
}

func (l *LoggingUsers) GetByEmail(ctx context.Context, email string) (types.UserDTO, error) {
	l.before("GetByEmail", email)
	dto, err := l.next.GetByEmail(ctx, email)
	l.after("GetByEmail", email)
	return dto, err
}

func (l *LoggingUsers) Create(ctx context.Context, dto types.UserDTO) (types.UserDTO, error) {
	l.before("Create", dto)
	created, err := l.next.Create(ctx, dto)
	l.after("Create", dto)
	return created, err
}

func (l *LoggingUsers) Update(ctx context.Context, id int, dto types.UserDTO) (types.UserDTO, error) {
	l.before("Update", id, dto)
	updated, err := l.next.Update(ctx, id, dto)
	l.after("Update", id, dto)
	return updated, err
}

func (l *LoggingUsers) Delete(ctx context.Context, id int) (string, error) {
	l.before("Delete", id)
	msg, err := l.next.Delete(ctx, id)
	l.after("Delete", id)
	return msg, err
}

// LoggingOrders logs every order-service call: the method name and
// arguments on entry, and the method name and result on exit. The
// wrapped call always runs; logging never short-circuits it.
type LoggingOrders struct {
	next services.Orders
	log  zerolog.Logger
}

func NewLoggingOrders(next services.Orders, log zerolog.Logger) *LoggingOrders {
	return &LoggingOrders{next: next, log: log}
}

func (l *LoggingOrders) entry(method string, args ...any) {
	l.log.Info().
		Str("method", "OrderService."+method).
		Str("args", fmt.Sprint(args...)).
		Msg("method starting")
}

func (l *LoggingOrders) exit(method string, result any, err error) {
	event := l.log.Info().Str("method", "OrderService."+method)
	if err != nil {
		event.Str("error", err.Error()).Msg("method failed")
		return
	}
	event.Str("result", fmt.Sprintf("%+v", result)).Msg("method finished")
}

func (l *LoggingOrders) List(ctx context.Context) ([]types.OrderDTO, error) {
	l.entry("List")
	dtos, err := l.next.List(ctx)
	l.exit("List", dtos, err)
	return dtos, err
}

func (l *LoggingOrders) GetByID(ctx context.Context, id int) (types.OrderDTO, error) {
	l.entry("GetByID", id)
	dto, err := l.next.GetByID(ctx, id)
	l.exit("GetByID", dto, err)
	return dto, err
}

func (l *LoggingOrders) Create(ctx context.Context, dto types.OrderDTO) (types.OrderDTO, error) {
	l.entry("Create", dto)
	created, err := l.next.Create(ctx, dto)
	l.exit("Create", created, err)
	return created, err
}

func (l *LoggingOrders) Update(ctx context.Context, dto types.OrderDTO) (types.OrderDTO, error) {
	l.entry("Update", dto)
	updated, err := l.next.Update(ctx, dto)
	l.exit("Update", updated, err)
	return updated, err
}
