package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testQuery struct {
	invalid bool
}

func (q testQuery) Validate() error {
	if q.invalid {
		return errors.New("bad query")
	}
	return nil
}

func TestQueryBusDispatch(t *testing.T) {
	qb := NewQueryBus()

	err := qb.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return "handled", nil
	}))
	require.NoError(t, err)

	result, err := qb.Ask(context.Background(), testQuery{})
	require.NoError(t, err)
	assert.Equal(t, "handled", result)

	t.Run("validation runs before dispatch", func(t *testing.T) {
		_, err := qb.Ask(context.Background(), testQuery{invalid: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query validation failed")
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		err := qb.Register(testQuery{}, QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
			return nil, nil
		}))
		assert.Error(t, err)
	})
}

func TestQueryBusUnregisteredQuery(t *testing.T) {
	qb := NewQueryBus()

	_, err := qb.Ask(context.Background(), testQuery{})
	assert.Error(t, err)
}

func TestChainOrdering(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next QueryHandler) QueryHandler {
			return QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
				order = append(order, name)
				return next.Handle(ctx, query)
			})
		}
	}

	handler := Chain(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		order = append(order, "handler")
		return nil, nil
	}), mw("outer"), mw("inner"))

	_, err := handler.Handle(context.Background(), testQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLoggingMiddlewarePassesResult(t *testing.T) {
	handler := Chain(QueryHandlerFunc(func(ctx context.Context, query Query) (interface{}, error) {
		return 42, nil
	}), LoggingMiddleware(zap.NewNop()))

	result, err := handler.Handle(context.Background(), testQuery{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}
