package flash

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toastJSON(t *testing.T, toast Toast) string {
	t.Helper()
	data, err := json.Marshal(toast)
	require.NoError(t, err)
	return string(data)
}

func TestRedisStorePush(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedis(client, 5*time.Minute)
	toast := Success("Pago registrado", "Monto: Q 150.00")

	mock.ExpectTxPipeline()
	mock.ExpectRPush("loandesk:flash:sess-1", toastJSON(t, toast)).SetVal(1)
	mock.ExpectExpire("loandesk:flash:sess-1", 5*time.Minute).SetVal(true)
	mock.ExpectTxPipelineExec()

	require.NoError(t, store.Push(context.Background(), "sess-1", toast))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorePushError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedis(client, time.Minute)
	toast := Success("a", "")

	mock.ExpectTxPipeline()
	mock.ExpectRPush("loandesk:flash:sess-1", toastJSON(t, toast)).SetErr(errors.New("connection reset"))

	err := store.Push(context.Background(), "sess-1", toast)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push toast")
}

func TestRedisStorePop(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedis(client, time.Minute)
	first := Success("Cliente actualizado", "Nombre: Ana Lopez")
	second := Error("No se pudo registrar el pago", "")

	mock.ExpectTxPipeline()
	mock.ExpectLRange("loandesk:flash:sess-1", 0, -1).SetVal([]string{toastJSON(t, first), toastJSON(t, second)})
	mock.ExpectDel("loandesk:flash:sess-1").SetVal(1)
	mock.ExpectTxPipelineExec()

	toasts, err := store.Pop(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []Toast{first, second}, toasts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorePopEmpty(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedis(client, time.Minute)

	mock.ExpectTxPipeline()
	mock.ExpectLRange("loandesk:flash:sess-1", 0, -1).SetVal([]string{})
	mock.ExpectDel("loandesk:flash:sess-1").SetVal(0)
	mock.ExpectTxPipelineExec()

	toasts, err := store.Pop(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Nil(t, toasts)
}

func TestRedisStoreSkipsEmptySession(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedis(client, time.Minute)

	require.NoError(t, store.Push(context.Background(), "", Success("a", "")))
	toasts, err := store.Pop(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, toasts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
