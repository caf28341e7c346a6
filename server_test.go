// Copyright 2026 The sendx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package sendx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/vessence/sendx/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var httpServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var httpsServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var http2Server = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var servers = []*httptest.Server{httpServer, httpsServer, http2Server}

func TestMain(m *testing.M) {
	httpServer.Start()
	defer httpServer.Close()
	httpsServer.StartTLS()
	defer httpsServer.Close()
	http2Server.EnableHTTP2 = true
	http2Server.StartTLS()
	defer http2Server.Close()
	waitForServerStart(httpServer)
	waitForServerStart(httpsServer)
	waitForServerStart(http2Server)
	os.Exit(m.Run())
}

func waitForServerStart(server *httptest.Server) {
	cl := &Client{Transport: serverTransport(server)}
	var e *request.Execution
	var err error
	for i := 0; i < 20; i++ {
		e, err = cl.Get(server.URL + "/hello")
		if err == nil && e.StatusCode() == 200 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	panic(fmt.Sprintf("Test server startup failed with status %d and error %v",
		e.StatusCode(), err))
}

func serverName(server *httptest.Server) string {
	switch server {
	case httpServer:
		return "http"
	case httpsServer:
		return "https"
	case http2Server:
		return "http2"
	default:
		panic("unknown server")
	}
}

// serverTransport wraps the test server's pre-configured client so it
// hands 3xx responses back instead of following them itself.
func serverTransport(server *httptest.Server) Transport {
	cl := server.Client()
	cl.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return cl
}

func serverHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/hello":
		_, _ = w.Write([]byte("hello, client"))
	case "/hops":
		n, _ := strconv.Atoi(r.URL.Query().Get("n"))
		if n > 0 {
			w.Header().Set("Location", fmt.Sprintf("/hops?n=%d", n-1))
			w.WriteHeader(302)
			return
		}
		_, _ = w.Write([]byte("arrived"))
	case "/see-other":
		w.Header().Set("Location", "/describe")
		w.WriteHeader(303)
	case "/preserve":
		w.Header().Set("Location", "/describe")
		w.WriteHeader(307)
	case "/describe":
		body, _ := io.ReadAll(r.Body)
		_, _ = fmt.Fprintf(w, "%s %q %s", r.Method, body, r.Header.Get("User-Agent"))
	case "/query":
		_, _ = io.WriteString(w, r.URL.RawQuery)
	case "/big":
		_, _ = w.Write(bytes.Repeat([]byte("b"), 1<<21))
	case "/drip":
		f := w.(http.Flusher)
		w.WriteHeader(200)
		f.Flush()
		for i := 0; i < 20; i++ {
			_, _ = w.Write(bytes.Repeat([]byte("d"), 512))
			f.Flush()
			time.Sleep(50 * time.Millisecond)
		}
	default:
		w.WriteHeader(404)
	}
}

func TestServer(t *testing.T) {
	for _, server := range servers {
		server := server
		t.Run(serverName(server), func(t *testing.T) {
			t.Parallel()
			cl := &Client{Transport: serverTransport(server)}

			t.Run("get", func(t *testing.T) {
				e, err := cl.Get(server.URL + "/hello")

				require.NoError(t, err)
				assert.Equal(t, 200, e.StatusCode())
				assert.Equal(t, []byte("hello, client"), e.Response.Body)
				assert.Equal(t, 0, e.Hop)
			})

			t.Run("redirect chain", func(t *testing.T) {
				e, err := cl.Get(server.URL + "/hops?n=3")

				require.NoError(t, err)
				assert.Equal(t, 200, e.StatusCode())
				assert.Equal(t, []byte("arrived"), e.Response.Body)
				assert.Equal(t, 3, e.Hop)
			})

			t.Run("redirect budget", func(t *testing.T) {
				s, err := request.NewSpec("GET", server.URL+"/hops?n=3")
				require.NoError(t, err)
				s.Options.MaxRedirects = 2

				e, err := cl.Do(s)

				require.NoError(t, err)
				require.NotNil(t, e.Response)
				assert.Equal(t, 302, e.StatusCode())
				assert.Equal(t, "/hops?n=0", e.Header("Location"))
				assert.Equal(t, 2, e.Hop)
			})

			t.Run("see other", func(t *testing.T) {
				e, err := cl.Post(server.URL+"/see-other", "text/plain", "data")

				require.NoError(t, err)
				assert.Equal(t, 200, e.StatusCode())
				assert.Equal(t, fmt.Sprintf("GET %q %s", "", request.DefaultUserAgent), string(e.Response.Body))
				assert.Equal(t, 1, e.Hop)
			})

			t.Run("preserve body", func(t *testing.T) {
				e, err := cl.Put(server.URL+"/preserve", "text/plain", "data")

				require.NoError(t, err)
				assert.Equal(t, 200, e.StatusCode())
				assert.Equal(t, fmt.Sprintf("PUT %q %s", "data", request.DefaultUserAgent), string(e.Response.Body))
				assert.Equal(t, 1, e.Hop)
			})

			t.Run("query merge", func(t *testing.T) {
				s, err := request.NewSpec("GET", server.URL+"/query?keep=1")
				require.NoError(t, err)
				s.Query = map[string]string{"b": "x y", "a": "1"}

				e, err := cl.Do(s)

				require.NoError(t, err)
				assert.Equal(t, "keep=1&a=1&b=x+y", string(e.Response.Body))
			})

			t.Run("too large", func(t *testing.T) {
				s, err := request.NewSpec("GET", server.URL+"/big")
				require.NoError(t, err)
				s.Options.MaxResponseBodySize = 1024

				e, err := cl.Do(s)

				require.Error(t, err)
				assert.Nil(t, e.Response)
				sx := AsError(err)
				require.NotNil(t, sx)
				assert.Equal(t, KindTooLarge, sx.Kind)
			})

			t.Run("context cancel", func(t *testing.T) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				s, err := request.NewSpecWithContext(ctx, "GET", server.URL+"/hello")
				require.NoError(t, err)

				e, err := cl.Do(s)

				require.Error(t, err)
				assert.Nil(t, e.Response)
				assert.ErrorIs(t, err, context.Canceled)
			})

			t.Run("slow body", func(t *testing.T) {
				s, err := request.NewSpec("GET", server.URL+"/drip")
				require.NoError(t, err)
				s.Options.MaxConnectionTime = 200 * time.Millisecond

				e, err := cl.Do(s)

				require.Error(t, err)
				assert.Nil(t, e.Response)
				sx := AsError(err)
				require.NotNil(t, sx)
				assert.Equal(t, KindTimeout, sx.Kind)
				assert.True(t, e.Timeout())
			})
		})
	}
}
