package awg

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/net2share/awgenc/internal/clientcfg"
	"github.com/net2share/awgenc/internal/wgconf"
	"github.com/stretchr/testify/require"
)

const endToEndConfig = `[Interface]
PrivateKey = AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=
Address = 10.8.0.2/24

[Peer]
PublicKey = BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBA=
Endpoint = 1.2.3.4:51820
AllowedIPs = 0.0.0.0/0
`

func decodeToken(t *testing.T, token string) []byte {
	t.Helper()
	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	zr, err := zlib.NewReader(bytes.NewReader(raw[4:]))
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.Equal(t, binary.BigEndian.Uint32(raw[:4]), uint32(len(data)))
	return data
}

func TestEncodeEndToEnd(t *testing.T) {
	res, err := EncodeText(endToEndConfig, Options{Description: "AmneziaVPN_alice"})
	require.NoError(t, err)

	require.NotEmpty(t, res.Token)
	require.False(t, strings.ContainsAny(res.Token, "+/="))
	require.Equal(t, res.Payload, decodeToken(t, res.Token))

	var payload Payload
	require.NoError(t, json.Unmarshal(res.Payload, &payload))
	require.Equal(t, "1.2.3.4", payload.HostName)
	require.Equal(t, "51820", payload.Containers[0].AWG.Port)
	require.Equal(t, "AmneziaVPN_alice", payload.Description)

	var last LastConfig
	require.NoError(t, json.Unmarshal([]byte(payload.Containers[0].AWG.LastConfig), &last))
	require.Equal(t, "10.8.0.2", last.ClientIP)
	require.Equal(t, "1.2.3.4", last.HostName)

	// The client splits the embedded config on the escaped newline.
	lines := strings.Split(last.Config, `\n`)
	require.Equal(t, "[Interface]", lines[0])
	require.Contains(t, lines, "[Peer]")
	require.Contains(t, lines, "Jc = 7")
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice.conf")
	require.NoError(t, os.WriteFile(path, []byte(endToEndConfig), 0600))

	fromFile, err := EncodeFile(path, Options{Description: "d"})
	require.NoError(t, err)
	fromText, err := EncodeText(endToEndConfig, Options{Description: "d"})
	require.NoError(t, err)
	require.Equal(t, fromText.Token, fromFile.Token)
}

func TestEncodeErrorKinds(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "missing.conf"), Options{})
	require.ErrorIs(t, err, wgconf.ErrFileAccess)

	_, err = EncodeText(strings.Replace(endToEndConfig, "Endpoint", "Endpunkt", 1), Options{})
	require.ErrorIs(t, err, wgconf.ErrConfig)

	_, err = EncodeText(strings.Replace(endToEndConfig, "10.8.0.2/24", "/24", 1), Options{})
	require.ErrorIs(t, err, ErrBuild)
	require.NotErrorIs(t, err, clientcfg.ErrEncode)
}

func TestEncodeStrictKeys(t *testing.T) {
	_, err := EncodeText(endToEndConfig, Options{StrictKeys: true})
	require.NoError(t, err)

	bad := strings.Replace(endToEndConfig, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", "AAAA", 1)
	_, err = EncodeText(bad, Options{})
	require.NoError(t, err)
	_, err = EncodeText(bad, Options{StrictKeys: true})
	require.ErrorIs(t, err, wgconf.ErrConfig)
}

func TestEncodeConcurrent(t *testing.T) {
	want, err := EncodeText(endToEndConfig, Options{Description: "d"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	tokens := make([]string, 16)
	errs := make([]error, len(tokens))
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := EncodeText(endToEndConfig, Options{Description: "d"})
			errs[i] = err
			if err == nil {
				tokens[i] = res.Token
			}
		}(i)
	}
	wg.Wait()

	for i := range tokens {
		require.NoError(t, errs[i])
		require.Equal(t, want.Token, tokens[i])
	}
}
