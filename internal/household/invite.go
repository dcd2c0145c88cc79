package household

import "crypto/rand"

// inviteAlphabet excludes nothing: codes are plain uppercase alphanumerics
// so they match what users type back in after upcasing.
const inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// inviteCodeLength is the fixed length of household invite codes.
const inviteCodeLength = 8

// newInviteCode draws a random invite code. Uniqueness is enforced by the
// store's unique index; the caller retries on Conflict.
func newInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	return string(buf), nil
}
