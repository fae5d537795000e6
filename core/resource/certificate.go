package resource

// Certificate is a TLS certificate installed on the account.
// The API omits ciphers, key and certificate from most responses.
type Certificate struct {
	attributes

	ID                     int64  `mapstructure:"id"`
	CommonName             string `mapstructure:"commonName"`
	CABundle               any    `mapstructure:"caBundle"`
	Domains                any    `mapstructure:"domains"`
	Fingerprint            any    `mapstructure:"fingerprint"`
	Issuer                 any    `mapstructure:"issuer"`
	Requester              any    `mapstructure:"requester"`
	CreatedDate            string `mapstructure:"createdDate"`
	UpdatedDate            string `mapstructure:"updatedDate"`
	ExpirationDate         string `mapstructure:"expirationDate"`
	Trusted                any    `mapstructure:"trusted"`
	CertificateInformation any    `mapstructure:"certificateInformation"`

	Ciphers     any `mapstructure:"ciphers"`
	Key         any `mapstructure:"key"`
	Certificate any `mapstructure:"certificate"`
}

var certificateRequired = []string{
	"id", "commonName", "caBundle", "domains", "fingerprint", "issuer",
	"requester", "createdDate", "updatedDate", "expirationDate", "trusted",
	"certificateInformation",
}

func newCertificate(obj map[string]any) (Record, bool) {
	c := &Certificate{}
	populate(obj, c, &c.attributes)
	return c, true
}

func (c *Certificate) Kind() Kind { return KindCertificate }

func (c *Certificate) Project() map[string]any {
	out := map[string]any{
		"id":                     c.ID,
		"commonName":             c.CommonName,
		"caBundle":               c.CABundle,
		"domains":                projectValue(c.Domains),
		"fingerprint":            c.Fingerprint,
		"issuer":                 projectValue(c.Issuer),
		"requester":              projectValue(c.Requester),
		"createdDate":            c.CreatedDate,
		"updatedDate":            c.UpdatedDate,
		"expirationDate":         c.ExpirationDate,
		"trusted":                c.Trusted,
		"certificateInformation": projectValue(c.CertificateInformation),
	}
	setOptionalValue(out, c.attributes, "ciphers", c.Ciphers)
	setOptionalValue(out, c.attributes, "key", c.Key)
	setOptionalValue(out, c.attributes, "certificate", c.Certificate)
	return c.overlay(out)
}
