package awg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/net2share/awgenc/internal/wgconf"
)

const jsonIndent = "    "

// Builder assembles a client payload from a parsed tunnel configuration.
type Builder struct {
	cfg         *wgconf.Config
	description string
	params      Params
}

// NewBuilder returns a Builder using the default parameter set.
func NewBuilder(cfg *wgconf.Config, description string) *Builder {
	return &Builder{
		cfg:         cfg,
		description: description,
		params:      DefaultParams(),
	}
}

// ClientIP returns the first interface address without its prefix length.
func (b *Builder) ClientIP() (string, error) {
	addr, _, _ := strings.Cut(b.cfg.Interface.Value("Address"), ",")
	ip, _, _ := strings.Cut(addr, "/")
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return "", fmt.Errorf("%w: interface address is empty", ErrBuild)
	}
	return ip, nil
}

// Endpoint returns the peer host and port. The port defaults to DefaultPort
// when the endpoint has no colon.
func (b *Builder) Endpoint() (host, port string, err error) {
	endpoint := b.cfg.Peer.Value("Endpoint")
	host, port, found := strings.Cut(endpoint, ":")
	if !found {
		port = DefaultPort
	}
	if host == "" {
		return "", "", fmt.Errorf("%w: peer endpoint %q has no host", ErrBuild, endpoint)
	}
	if port == "" {
		return "", "", fmt.Errorf("%w: peer endpoint %q has no port", ErrBuild, endpoint)
	}
	return host, port, nil
}

// FormattedConfig renders the configuration with the protocol parameters
// merged into the interface section, newlines replaced by a literal \n.
func (b *Builder) FormattedConfig() string {
	merged := b.cfg.WithInterface(b.params.Merge(b.cfg.Interface))
	return EscapeNewlines(merged.Render())
}

// EscapeNewlines replaces each newline with the two characters `\n`.
func EscapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

// Build returns the payload document.
func (b *Builder) Build() (*Payload, error) {
	clientIP, err := b.ClientIP()
	if err != nil {
		return nil, err
	}
	privKey := b.cfg.Interface.Value("PrivateKey")
	if privKey == "" {
		return nil, fmt.Errorf("%w: interface private key is empty", ErrBuild)
	}
	serverPubKey := b.cfg.Peer.Value("PublicKey")
	if serverPubKey == "" {
		return nil, fmt.Errorf("%w: peer public key is empty", ErrBuild)
	}
	host, port, err := b.Endpoint()
	if err != nil {
		return nil, err
	}

	p := b.params
	last := LastConfig{
		H1:            p.H1,
		H2:            p.H2,
		H3:            p.H3,
		H4:            p.H4,
		Jc:            p.Jc,
		Jmax:          p.Jmax,
		Jmin:          p.Jmin,
		S1:            p.S1,
		S2:            p.S2,
		ClientIP:      clientIP,
		ClientPrivKey: privKey,
		ClientPubKey:  ClientPubKeyPlaceholder,
		Config:        b.FormattedConfig(),
		HostName:      host,
		Port:          port,
		PSKKey:        b.cfg.Peer.Value("PresharedKey"),
		ServerPubKey:  serverPubKey,
	}
	lastJSON, err := marshalIndent(last)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal last config: %w", ErrBuild, err)
	}

	return &Payload{
		Containers: []Container{
			{
				AWG: ContainerAWG{
					H1:             p.H1,
					H2:             p.H2,
					H3:             p.H3,
					H4:             p.H4,
					Jc:             p.Jc,
					Jmax:           p.Jmax,
					Jmin:           p.Jmin,
					S1:             p.S1,
					S2:             p.S2,
					LastConfig:     string(lastJSON),
					Port:           port,
					TransportProto: TransportProto,
				},
				Container: ContainerName,
			},
		},
		DefaultContainer: ContainerName,
		Description:      b.description,
		DNS1:             PrimaryDNS,
		DNS2:             SecondaryDNS,
		HostName:         host,
	}, nil
}

// JSON returns the payload rendered as indented JSON text.
func (b *Builder) JSON() ([]byte, error) {
	payload, err := b.Build()
	if err != nil {
		return nil, err
	}
	data, err := marshalIndent(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %w", ErrBuild, err)
	}
	return data, nil
}

func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
