package sender

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ComputerName      string   `json:"ComputerName"`
	InstalledSoftware []string `json:"InstalledSoftware"`
}

func TestSend(t *testing.T) {
	var (
		gotBody []byte
		gotID   string
		gotType string
		gotMeth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMeth = r.Method
		gotType = r.Header.Get("Content-Type")
		gotID = r.Header.Get("X-Request-Id")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	in := payload{ComputerName: "WS-0042", InstalledSoftware: []string{"中文 <app> & co"}}
	res, err := New(srv.URL+"/api/?pn=ItDeviceReceive", time.Second).Send(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMeth)
	assert.Equal(t, "application/json; charset=utf-8", gotType)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, gotID, res.RequestID)
	_, err = uuid.Parse(res.RequestID)
	assert.NoError(t, err)

	assert.Equal(t, `{"ComputerName":"WS-0042","InstalledSoftware":["中文 <app> & co"]}`, string(gotBody))
	var out payload
	require.NoError(t, json.Unmarshal(gotBody, &out))
	assert.Equal(t, in, out)
}

func TestSendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := New(srv.URL, 0).Send(context.Background(), payload{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Status, "500")
}

func TestSendUnreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	res, err := New("http://"+addr+"/api", time.Second).Send(context.Background(), payload{})
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestSendUnencodable(t *testing.T) {
	_, err := New("http://127.0.0.1:1", time.Second).Send(context.Background(), map[string]any{"bad": make(chan int)})
	assert.Error(t, err)
}
