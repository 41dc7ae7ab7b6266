package awg

import (
	"encoding/json"
	"testing"

	"github.com/net2share/awgenc/internal/wgconf"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T, address, endpoint string) *wgconf.Config {
	t.Helper()
	iface := wgconf.NewSection()
	iface.Set("PrivateKey", "cPriv=")
	iface.Set("Address", address)
	peer := wgconf.NewSection()
	peer.Set("PublicKey", "sPub=")
	peer.Set("Endpoint", endpoint)
	peer.Set("AllowedIPs", "0.0.0.0/0")
	return &wgconf.Config{Interface: iface, Peer: peer}
}

func TestClientIP(t *testing.T) {
	cases := []struct {
		address string
		want    string
		wantErr bool
	}{
		{address: "10.8.0.2/24", want: "10.8.0.2"},
		{address: "10.0.0.2/32,10.0.0.3/32", want: "10.0.0.2"},
		{address: "10.0.0.7", want: "10.0.0.7"},
		{address: "fd00::2/128, 10.0.0.2/32", want: "fd00::2"},
		{address: "", wantErr: true},
		{address: "/24", wantErr: true},
		{address: ",10.0.0.2", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.address, func(t *testing.T) {
			ip, err := NewBuilder(newConfig(t, tc.address, "h:1"), "").ClientIP()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrBuild)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, ip)
		})
	}
}

func TestEndpoint(t *testing.T) {
	cases := []struct {
		endpoint string
		host     string
		port     string
		wantErr  bool
	}{
		{endpoint: "vpn.example.com:51820", host: "vpn.example.com", port: "51820"},
		{endpoint: "vpn.example.com", host: "vpn.example.com", port: DefaultPort},
		{endpoint: "1.2.3.4:1:2", host: "1.2.3.4", port: "1:2"},
		{endpoint: ":51820", wantErr: true},
		{endpoint: "host:", wantErr: true},
		{endpoint: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.endpoint, func(t *testing.T) {
			host, port, err := NewBuilder(newConfig(t, "10.0.0.2/32", tc.endpoint), "").Endpoint()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrBuild)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.host, host)
			require.Equal(t, tc.port, port)
		})
	}
}

func TestFormattedConfig(t *testing.T) {
	cfg := newConfig(t, "10.0.0.2/32,10.0.0.3/32", "h:1")
	got := NewBuilder(cfg, "").FormattedConfig()

	want := `[Interface]\nPrivateKey = cPriv=\nAddress = 10.0.0.2/32\n` +
		`Jc = 7\nJmin = 50\nJmax = 1000\nS1 = 116\nS2 = 61\n` +
		`H1 = 1139437039\nH2 = 1088834137\nH3 = 977318325\nH4 = 1583407056\n` +
		`\n[Peer]\nPublicKey = sPub=\nEndpoint = h:1\nAllowedIPs = 0.0.0.0/0`
	require.Equal(t, want, got)
	require.NotContains(t, got, "\n")

	// The parsed record is left untouched.
	require.False(t, cfg.Interface.Has("Jc"))
}

func TestBuildUsesConstantParams(t *testing.T) {
	cfg := newConfig(t, "10.0.0.2/32", "h:1")
	cfg.Interface.Set("Jc", "99")
	cfg.Interface.Set("H1", "1")

	payload, err := NewBuilder(cfg, "d").Build()
	require.NoError(t, err)

	awg := payload.Containers[0].AWG
	require.Equal(t, "7", awg.Jc)
	require.Equal(t, "1139437039", awg.H1)

	var last LastConfig
	require.NoError(t, json.Unmarshal([]byte(awg.LastConfig), &last))
	require.Equal(t, "7", last.Jc)
	require.Equal(t, "1139437039", last.H1)
	// Existing keys keep their position but take the constant value.
	require.Contains(t, last.Config, `Address = 10.0.0.2/32\nJc = 7\nH1 = 1139437039\nJmin = 50`)
}

func TestBuildPayload(t *testing.T) {
	cfg := newConfig(t, "10.8.0.2/24", "vpn.example.com:51820")
	cfg.Peer.Set("PresharedKey", "psk=")

	payload, err := NewBuilder(cfg, "AmneziaVPN_alice").Build()
	require.NoError(t, err)

	require.Equal(t, ContainerName, payload.DefaultContainer)
	require.Equal(t, "AmneziaVPN_alice", payload.Description)
	require.Equal(t, "1.1.1.1", payload.DNS1)
	require.Equal(t, "1.0.0.1", payload.DNS2)
	require.Equal(t, "vpn.example.com", payload.HostName)
	require.Len(t, payload.Containers, 1)

	c := payload.Containers[0]
	require.Equal(t, ContainerName, c.Container)
	require.Equal(t, "51820", c.AWG.Port)
	require.Equal(t, "udp", c.AWG.TransportProto)

	var last LastConfig
	require.NoError(t, json.Unmarshal([]byte(c.AWG.LastConfig), &last))
	require.Equal(t, "10.8.0.2", last.ClientIP)
	require.Equal(t, "cPriv=", last.ClientPrivKey)
	require.Equal(t, "0", last.ClientPubKey)
	require.Equal(t, "vpn.example.com", last.HostName)
	require.Equal(t, "51820", last.Port)
	require.Equal(t, "psk=", last.PSKKey)
	require.Equal(t, "sPub=", last.ServerPubKey)
}

func TestBuildDefaultsPSKToEmpty(t *testing.T) {
	payload, err := NewBuilder(newConfig(t, "10.0.0.2/32", "h:1"), "").Build()
	require.NoError(t, err)

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload.Containers[0].AWG.LastConfig), &last))
	require.Contains(t, last, "psk_key")
	require.Equal(t, "", last["psk_key"])
}

func TestJSONShape(t *testing.T) {
	data, err := NewBuilder(newConfig(t, "10.0.0.2/32", "h:1"), "desc <&>").JSON()
	require.NoError(t, err)

	require.True(t, json.Valid(data))
	require.NotEqual(t, byte('\n'), data[len(data)-1])
	require.Contains(t, string(data), "\n    \"containers\": [")
	require.Contains(t, string(data), `"description": "desc <&>"`)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.ElementsMatch(t,
		[]string{"containers", "defaultContainer", "description", "dns1", "dns2", "hostName"},
		keysOf(doc))

	container := doc["containers"].([]any)[0].(map[string]any)
	awg := container["awg"].(map[string]any)
	require.ElementsMatch(t,
		[]string{"H1", "H2", "H3", "H4", "Jc", "Jmax", "Jmin", "S1", "S2", "last_config", "port", "transport_proto"},
		keysOf(awg))

	// last_config is a string holding JSON, not a nested object.
	lastStr, ok := awg["last_config"].(string)
	require.True(t, ok)
	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lastStr), &last))
	require.ElementsMatch(t,
		[]string{"H1", "H2", "H3", "H4", "Jc", "Jmax", "Jmin", "S1", "S2",
			"client_ip", "client_priv_key", "client_pub_key", "config", "hostName", "port", "psk_key", "server_pub_key"},
		keysOf(last))
}

func TestJSONStable(t *testing.T) {
	cfg := newConfig(t, "10.0.0.2/32", "h:1")
	a, err := NewBuilder(cfg, "x").JSON()
	require.NoError(t, err)
	b, err := NewBuilder(cfg, "x").JSON()
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestParamsMerge(t *testing.T) {
	iface := wgconf.NewSection()
	iface.Set("PrivateKey", "k")
	iface.Set("S2", "0")

	merged := DefaultParams().Merge(iface)
	require.Equal(t,
		[]string{"PrivateKey", "S2", "Jc", "Jmin", "Jmax", "S1", "H1", "H2", "H3", "H4"},
		merged.Keys())
	require.Equal(t, "61", merged.Value("S2"))
	require.Equal(t, "0", iface.Value("S2"))
	require.Equal(t, 2, iface.Len())

	for _, k := range ParamKeys {
		_, ok := DefaultParams().Get(k)
		require.True(t, ok, k)
	}
	_, ok := DefaultParams().Get("I1")
	require.False(t, ok)
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
