package securestore

// Envelope is the persisted form of every value. Fingerprint covers Payload,
// not the plaintext; Timestamp is the write time in epoch milliseconds.
type Envelope struct {
	Payload     string `json:"payload"`
	Fingerprint string `json:"fingerprint"`
	Timestamp   int64  `json:"timestamp"`
}
