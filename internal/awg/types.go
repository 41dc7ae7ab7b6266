package awg

// Fixed payload values expected by the AmneziaVPN client.
const (
	ContainerName  = "amnezia-awg"
	TransportProto = "udp"
	DefaultPort    = "39547"
	PrimaryDNS     = "1.1.1.1"
	SecondaryDNS   = "1.0.0.1"
	// ClientPubKeyPlaceholder is sent in place of the client public key.
	ClientPubKeyPlaceholder = "0"
)

// Payload is the top-level document imported by the client.
// Field order is alphabetical by JSON name.
type Payload struct {
	Containers       []Container `json:"containers"`
	DefaultContainer string      `json:"defaultContainer"`
	Description      string      `json:"description"`
	DNS1             string      `json:"dns1"`
	DNS2             string      `json:"dns2"`
	HostName         string      `json:"hostName"`
}

// Container describes one protocol container.
type Container struct {
	AWG       ContainerAWG `json:"awg"`
	Container string       `json:"container"`
}

// ContainerAWG carries the AmneziaWG settings of a container. LastConfig
// holds a JSON document encoded as a string.
type ContainerAWG struct {
	H1             string `json:"H1"`
	H2             string `json:"H2"`
	H3             string `json:"H3"`
	H4             string `json:"H4"`
	Jc             string `json:"Jc"`
	Jmax           string `json:"Jmax"`
	Jmin           string `json:"Jmin"`
	S1             string `json:"S1"`
	S2             string `json:"S2"`
	LastConfig     string `json:"last_config"`
	Port           string `json:"port"`
	TransportProto string `json:"transport_proto"`
}

// LastConfig is the client connection record embedded in ContainerAWG.
type LastConfig struct {
	H1            string `json:"H1"`
	H2            string `json:"H2"`
	H3            string `json:"H3"`
	H4            string `json:"H4"`
	Jc            string `json:"Jc"`
	Jmax          string `json:"Jmax"`
	Jmin          string `json:"Jmin"`
	S1            string `json:"S1"`
	S2            string `json:"S2"`
	ClientIP      string `json:"client_ip"`
	ClientPrivKey string `json:"client_priv_key"`
	ClientPubKey  string `json:"client_pub_key"`
	Config        string `json:"config"`
	HostName      string `json:"hostName"`
	Port          string `json:"port"`
	PSKKey        string `json:"psk_key"`
	ServerPubKey  string `json:"server_pub_key"`
}
