package http

import (
	"bufio"
	"bytes"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/valyala/fasthttp"
)

var (
	benchSimpleRequest = []byte("GET /api/users HTTP/1.1\r\n" +
		"Host: example.com\r\n" +
		"Accept: application/json\r\n" +
		"\r\n")

	benchBrowserRequest = []byte("GET /wp-content/uploads/2010/03/hello-kitty-darth-vader-pink.jpg HTTP/1.1\r\n" +
		"Host: www.kittyhell.com\r\n" +
		"User-Agent: Mozilla/5.0 (Macintosh; U; Intel Mac OS X 10.6; ja-JP-mac; rv:1.9.2.3) Gecko/20100401 Firefox/3.6.3 Pathtraq/0.9\r\n" +
		"Accept: text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8\r\n" +
		"Accept-Language: ja,en-us;q=0.7,en;q=0.3\r\n" +
		"Accept-Encoding: gzip,deflate\r\n" +
		"Accept-Charset: Shift_JIS,utf-8;q=0.7,*;q=0.7\r\n" +
		"Keep-Alive: 115\r\n" +
		"Connection: keep-alive\r\n" +
		"Cookie: wp_ozh_wsa_visits=2; wp_ozh_wsa_visit_lasttime=xxxxxxxxxx; __utma=xxxxxxxxx.xxxxxxxxxx.xxxxxxxxxx.xxxxxxxxxx.xxxxxxxxxx.x; __utmz=xxxxxxxxx.xxxxxxxxxx.x.x.utmccn=(referral)|utmcsr=reader.livedoor.com|utmcct=/reader/|utmcmd=referral\r\n" +
		"\r\n")

	benchResponse = []byte("HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 26\r\n" +
		"Server: shape-preamble\r\n" +
		"\r\n")
)

func randomHeaderRequest(n int) []byte {
	var b strings.Builder
	b.WriteString("GET /" + uniuri.New() + " HTTP/1.1\r\n")
	for i := 0; i < n; i++ {
		b.WriteString("X-" + uniuri.NewLen(8) + ": " + uniuri.NewLen(24) + "\r\n")
	}
	b.WriteString("\r\n")
	return []byte(b.String())
}

func benchmarkParseRequest(b *testing.B, data []byte) {
	headers := make(Headers, 0, 32)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := Request{Headers: headers[:0]}
		if _, err := ParseRequest(data, &req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseRequest_Simple(b *testing.B)  { benchmarkParseRequest(b, benchSimpleRequest) }
func BenchmarkParseRequest_Browser(b *testing.B) { benchmarkParseRequest(b, benchBrowserRequest) }
func BenchmarkParseRequest_Random20(b *testing.B) {
	benchmarkParseRequest(b, randomHeaderRequest(20))
}

func BenchmarkParseResponse(b *testing.B) {
	headers := make(Headers, 0, 16)
	b.SetBytes(int64(len(benchResponse)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp := Response{Headers: headers[:0]}
		if _, err := ParseResponse(benchResponse, &resp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnmarshalRequest(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := UnmarshalRequest(benchBrowserRequest); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshal_Request(b *testing.B) {
	var req Request
	if _, err := ParseRequest(benchBrowserRequest, &req); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Marshal(&req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecoder(b *testing.B) {
	stream := bytes.Repeat(benchSimpleRequest, 64)
	b.SetBytes(int64(len(stream)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dec := NewDecoder(bytes.NewReader(stream))
		var req Request
		for {
			req.Headers = req.Headers[:0]
			if err := dec.DecodeRequest(&req); err != nil {
				break
			}
		}
	}
}

// Reference points: the same preamble through fasthttp and net/http.

func BenchmarkFasthttp_RequestHeader(b *testing.B) {
	var h fasthttp.RequestHeader
	r := bytes.NewReader(benchBrowserRequest)
	br := bufio.NewReader(r)
	b.SetBytes(int64(len(benchBrowserRequest)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Reset(benchBrowserRequest)
		br.Reset(r)
		h.Reset()
		if err := h.Read(br); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStdlib_ReadRequest(b *testing.B) {
	r := bytes.NewReader(benchBrowserRequest)
	br := bufio.NewReader(r)
	b.SetBytes(int64(len(benchBrowserRequest)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Reset(benchBrowserRequest)
		br.Reset(r)
		if _, err := nethttp.ReadRequest(br); err != nil {
			b.Fatal(err)
		}
	}
}
