package internal

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestInspectHandler_Lists_Prefix(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("fail:0000000000000000001:aaaaaaaa-bbbb"), []byte(`{}`)); err != nil {
			return err
		}
		return txn.Set([]byte("other:key"), []byte("ignored"))
	}))

	handler := NewInspectHandler(logs.GetLoggerFromLevel(slog.LevelDebug), db, nil,
		func() map[string]any { return map[string]any{"live_connections": 7} })

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inspect", nil))

	req.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	req.Contains(body, "fail:0000000000000000001:aaaaaaaa-bbbb")
	req.Contains(body, "aaaaaaaa")
	req.Contains(body, "live_connections")
	req.NotContains(body, "other:key")
}

func TestDefaultMapper(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 1, 2, 10, 11, 12, 0, time.UTC)

	row := DefaultMapper(fmt.Sprintf("fail:%019d:0123456789abcdef", at.UnixNano()), []byte("12345"))
	req.Equal("10:11:12.000", row.Timestamp)
	req.Equal("01234567", row.EntityID)
	req.Equal("Size: 5 bytes", row.Detail)

	raw := DefaultMapper("garbage", nil)
	req.Equal("--:--:--", raw.Timestamp)
	req.Equal("garbage", raw.Key)
}
