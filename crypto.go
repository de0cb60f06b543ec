// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfgen

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/rc4"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"strconv"

	"github.com/xdg-go/stringprep"
)

// EncryptMode selects the revision of the standard security handler,
// together with the cipher and key length.
type EncryptMode int

// These are the supported encryption modes.
const (
	// EncryptR2 uses RC4 with a 40-bit key (PDF 1.1).
	EncryptR2 EncryptMode = iota + 1

	// EncryptR3 uses RC4 with a 128-bit key (PDF 1.4).
	EncryptR3

	// EncryptR4 uses AES-128 in CBC mode (PDF 1.6).
	EncryptR4

	// EncryptR6 uses AES-256 in CBC mode (PDF 2.0).
	EncryptR6
)

func (mode EncryptMode) String() string {
	switch mode {
	case EncryptR2:
		return "RC4-40"
	case EncryptR3:
		return "RC4-128"
	case EncryptR4:
		return "AES-128"
	case EncryptR6:
		return "AES-256"
	default:
		return "pdfgen.EncryptMode(" + strconv.Itoa(int(mode)) + ")"
	}
}

// MinVersion returns the earliest PDF version which supports the mode.
func (mode EncryptMode) MinVersion() Version {
	switch mode {
	case EncryptR2:
		return V1_2
	case EncryptR3:
		return V1_4
	case EncryptR4:
		return V1_6
	case EncryptR6:
		return V2_0
	default:
		return 0
	}
}

// EncryptionOptions contains optional settings for [NewEncryption].
type EncryptionOptions struct {
	// UnencryptedMetadata leaves the document-level XMP metadata stream
	// (see [WriterOptions.MetadataRef]) unencrypted.  This is only supported for EncryptR4 and EncryptR6.
	UnencryptedMetadata bool
}

// Encryption holds the state of the standard security handler for one
// document.  An Encryption is created once using [NewEncryption] and is
// read-only afterwards.
//
// The standard security handler is specified in section 7.6.3 of
// ISO 32000-2:2020.
type Encryption struct {
	Mode EncryptMode

	// R is the revision of the standard security handler.
	R int

	// ID is the first element of the document ID.
	ID []byte

	// O is a byte string, based on the owner password, that is used in
	// computing the file encryption key and in determining whether a valid
	// owner password was entered.
	O []byte

	// U is a byte string, based on the owner and user password, that is used
	// in determining whether to prompt the user for a password and, if so,
	// whether a valid user or owner password was entered.
	U []byte

	OE    []byte
	UE    []byte
	Perms []byte

	// P is a set of flags specifying which operations shall be permitted when
	// the document is opened with user access.
	P uint32

	keyBytes int
	key      []byte
	cipher   cipherType

	// unencryptedMetadata is the negation of /EncryptMetadata, so that
	// the zero value corresponds to the PDF default.
	unencryptedMetadata bool
}

// NewEncryption sets up the standard security handler for a new document.
//
// The id must be the first element of the document ID.  An empty owner
// password is replaced by the user password.  Passwords are converted to
// PDFDocEncoding where possible and used as UTF-8 bytes otherwise.
func NewEncryption(id []byte, userPwd, ownerPwd string, perm Perm, mode EncryptMode, opt *EncryptionOptions) (*Encryption, error) {
	const op = "NewEncryption"
	if opt == nil {
		opt = &EncryptionOptions{}
	}
	if len(id) == 0 {
		return nil, Errorf(InvalidParameter, op, errors.New("missing document ID"))
	}
	if perm&^PermAll != 0 {
		return nil, Errorf(InvalidParameter, op, fmt.Errorf("invalid permissions 0x%x", int(perm)))
	}
	if ownerPwd == "" {
		ownerPwd = userPwd
	}

	enc := &Encryption{
		Mode: mode,
		ID:   bytes.Clone(id),
		P:    stdSecPermToP(perm),
	}
	switch mode {
	case EncryptR2:
		if !perm.canR2() {
			return nil, Errorf(InvalidParameter, op,
				errors.New("permissions cannot be represented by revision 2"))
		}
		enc.R = 2
		enc.keyBytes = 5
		enc.cipher = cipherRC4
	case EncryptR3:
		enc.R = 3
		enc.keyBytes = 16
		enc.cipher = cipherRC4
	case EncryptR4:
		enc.R = 4
		enc.keyBytes = 16
		enc.cipher = cipherAES
	case EncryptR6:
		enc.R = 6
		enc.keyBytes = 32
		enc.cipher = cipherAES
	default:
		return nil, Errorf(InvalidParameter, op, fmt.Errorf("invalid encryption mode %d", int(mode)))
	}
	if opt.UnencryptedMetadata {
		if enc.R < 4 {
			return nil, Errorf(InvalidParameter, op,
				errors.New("unencrypted metadata requires AES encryption"))
		}
		enc.unencryptedMetadata = true
	}

	switch enc.R {
	case 2, 3, 4:
		paddedUserPwd := padPasswd(userPwd)
		paddedOwnerPwd := padPasswd(ownerPwd)
		enc.O = enc.computeO(paddedUserPwd, paddedOwnerPwd)
		enc.key = enc.computeFileEncryptionKey(paddedUserPwd)
		enc.U = enc.computeU(enc.key)
	case 6:
		utf8UserPwd, err := utf8Passwd(userPwd)
		if err != nil {
			return nil, Errorf(InvalidParameter, op, err)
		}
		utf8OwnerPwd, err := utf8Passwd(ownerPwd)
		if err != nil {
			return nil, Errorf(InvalidParameter, op, err)
		}
		enc.key = make([]byte, 32)
		_, err = io.ReadFull(rand.Reader, enc.key)
		if err != nil {
			return nil, err
		}
		enc.U, enc.UE, err = enc.computeUAndUE(utf8UserPwd)
		if err != nil {
			return nil, err
		}
		enc.O, enc.OE, err = enc.computeOAndOE(utf8OwnerPwd)
		if err != nil {
			return nil, err
		}
		enc.Perms = enc.computePerms(enc.key)
	}

	return enc, nil
}

// MinVersion returns the earliest PDF version which supports enc.
func (enc *Encryption) MinVersion() Version {
	return enc.Mode.MinVersion()
}

// Permissions returns the user permissions encoded in /P.
func (enc *Encryption) Permissions() Perm {
	return stdSecPToPerm(enc.R, enc.P)
}

// EncryptMetadata reports whether document-level metadata streams are
// encrypted.
func (enc *Encryption) EncryptMetadata() bool {
	return !enc.unencryptedMetadata
}

// Dict returns the encryption dictionary for the trailer.
func (enc *Encryption) Dict() Dict {
	dict := Dict{
		"Filter": Name("Standard"),
		"R":      Integer(enc.R),
		"O":      String(enc.O),
		"U":      String(enc.U),
		"P":      Integer(int32(enc.P)),
	}
	switch enc.R {
	case 2:
		dict["V"] = Integer(1)
	case 3:
		dict["V"] = Integer(2)
		dict["Length"] = Integer(8 * enc.keyBytes)
	case 4:
		dict["V"] = Integer(4)
		dict["Length"] = Integer(128)
		dict["StmF"] = Name("StdCF")
		dict["StrF"] = Name("StdCF")
		dict["CF"] = Dict{
			"StdCF": Dict{
				"CFM":       Name("AESV2"),
				"Length":    Integer(16),
				"AuthEvent": Name("DocOpen"),
			},
		}
	case 6:
		dict["V"] = Integer(5)
		dict["Length"] = Integer(256)
		dict["StmF"] = Name("StdCF")
		dict["StrF"] = Name("StdCF")
		dict["CF"] = Dict{
			"StdCF": Dict{
				"CFM":       Name("AESV3"),
				"Length":    Integer(32),
				"AuthEvent": Name("DocOpen"),
			},
		}
		dict["OE"] = String(enc.OE)
		dict["UE"] = String(enc.UE)
		dict["Perms"] = String(enc.Perms)
	}
	if enc.unencryptedMetadata {
		dict["EncryptMetadata"] = Bool(false)
	}
	return dict
}

// ObjectKey returns the key used to encrypt strings and streams of the
// indirect object ref (algorithm 1 of the PDF specification).
func (enc *Encryption) ObjectKey(ref Reference) []byte {
	if enc.R >= 5 {
		return enc.key
	}

	h := md5.New()
	h.Write(enc.key)
	num := ref.Number()
	gen := ref.Generation()
	h.Write([]byte{
		byte(num), byte(num >> 8), byte(num >> 16),
		byte(gen), byte(gen >> 8)})
	if enc.cipher == cipherAES {
		h.Write([]byte("sAlT"))
	}
	l := min(enc.keyBytes+5, 16)
	return h.Sum(nil)[:l]
}

// EncryptBytes encrypts buf for inclusion in the indirect object ref.
// The contents of buf are not modified.
func (enc *Encryption) EncryptBytes(ref Reference, buf []byte) ([]byte, error) {
	return enc.forObject(ref).encrypt(buf)
}

// DecryptBytes reverses [Encryption.EncryptBytes].
// The contents of buf are not modified.
func (enc *Encryption) DecryptBytes(ref Reference, buf []byte) ([]byte, error) {
	return enc.forObject(ref).decrypt(buf)
}

func (enc *Encryption) forObject(ref Reference) *objectCrypt {
	return &objectCrypt{
		cipher: enc.cipher,
		key:    enc.ObjectKey(ref),
	}
}

// objectCrypt encrypts the strings and streams of a single indirect
// object.  The object key is computed only once.
type objectCrypt struct {
	cipher cipherType
	key    []byte
}

func (oc *objectCrypt) encrypt(buf []byte) ([]byte, error) {
	switch oc.cipher {
	case cipherAES:
		n := len(buf)
		nPad := 16 - n%16
		out := make([]byte, 16+n+nPad) // iv | c(data|padding)

		iv := out[:16]
		_, err := io.ReadFull(rand.Reader, iv)
		if err != nil {
			return nil, err
		}
		copy(out[16:], buf)
		for i := 16 + n; i < len(out); i++ {
			out[i] = byte(nPad)
		}

		c, err := aes.NewCipher(oc.key)
		if err != nil {
			return nil, err
		}
		cbc := cipher.NewCBCEncrypter(c, iv)
		cbc.CryptBlocks(out[16:], out[16:])
		return out, nil
	case cipherRC4:
		c, err := rc4.NewCipher(oc.key)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(buf))
		c.XORKeyStream(out, buf)
		return out, nil
	default:
		panic("unknown cipher")
	}
}

func (oc *objectCrypt) decrypt(buf []byte) ([]byte, error) {
	switch oc.cipher {
	case cipherAES:
		if len(buf) < 32 || len(buf)%16 != 0 {
			return nil, errCorrupted
		}
		c, err := aes.NewCipher(oc.key)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(buf)-16)
		cbc := cipher.NewCBCDecrypter(c, buf[:16])
		cbc.CryptBlocks(out, buf[16:])

		nPad := int(out[len(out)-1])
		if nPad < 1 || nPad > 16 {
			return nil, errCorrupted
		}
		return out[:len(out)-nPad], nil
	case cipherRC4:
		c, err := rc4.NewCipher(oc.key)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(buf))
		c.XORKeyStream(out, buf)
		return out, nil
	default:
		panic("unknown cipher")
	}
}

// AuthenticateUser checks whether passwd is a valid user password.
// The owner password is accepted, too.
func (enc *Encryption) AuthenticateUser(passwd string) bool {
	if enc.AuthenticateOwner(passwd) {
		return true
	}
	if enc.R >= 5 {
		prepared, err := utf8Passwd(passwd)
		if err != nil {
			return false
		}
		_, ok := enc.authenticateUser6(prepared)
		return ok
	}
	_, ok := enc.authenticateUser(padPasswd(passwd))
	return ok
}

// AuthenticateOwner checks whether passwd is the owner password.
func (enc *Encryption) AuthenticateOwner(passwd string) bool {
	if enc.R >= 5 {
		prepared, err := utf8Passwd(passwd)
		if err != nil {
			return false
		}
		_, ok := enc.authenticateOwner6(prepared)
		return ok
	}
	_, ok := enc.authenticateOwner(padPasswd(passwd))
	return ok
}

// Algorithm 2: compute the file encryption key for R <= 4.
func (enc *Encryption) computeFileEncryptionKey(paddedUserPwd []byte) []byte {
	h := md5.New()
	h.Write(paddedUserPwd)
	h.Write(enc.O)
	h.Write([]byte{
		byte(enc.P), byte(enc.P >> 8), byte(enc.P >> 16), byte(enc.P >> 24)})
	h.Write(enc.ID)
	if enc.unencryptedMetadata && enc.R >= 4 {
		h.Write([]byte{255, 255, 255, 255})
	}
	key := h.Sum(nil)

	if enc.R >= 3 {
		for i := 0; i < 50; i++ {
			h.Reset()
			h.Write(key[:enc.keyBytes])
			key = h.Sum(key[:0])
		}
	}

	return key[:enc.keyBytes]
}

// ownerRC4Key computes the RC4 key used for /O (steps a-d of algorithm 3).
func (enc *Encryption) ownerRC4Key(paddedOwnerPwd []byte) []byte {
	h := md5.New()
	h.Write(paddedOwnerPwd)
	sum := h.Sum(nil)
	if enc.R >= 3 {
		for i := 0; i < 50; i++ {
			h.Reset()
			h.Write(sum[:enc.keyBytes])
			sum = h.Sum(sum[:0])
		}
	}
	return sum[:enc.keyBytes]
}

// Algorithm 3: compute O.
func (enc *Encryption) computeO(paddedUserPwd, paddedOwnerPwd []byte) []byte {
	rc4key := enc.ownerRC4Key(paddedOwnerPwd)

	c, _ := rc4.NewCipher(rc4key)
	O := make([]byte, 32)
	c.XORKeyStream(O, paddedUserPwd)
	if enc.R >= 3 {
		key := make([]byte, len(rc4key))
		for i := byte(1); i <= 19; i++ {
			for j := range key {
				key[j] = rc4key[j] ^ i
			}
			c, _ = rc4.NewCipher(key)
			c.XORKeyStream(O, O)
		}
	}
	return O
}

// Algorithm 4/5: compute U.
func (enc *Encryption) computeU(fileEncryptionKey []byte) []byte {
	U := make([]byte, 32)
	switch enc.R {
	case 2:
		c, _ := rc4.NewCipher(fileEncryptionKey)
		c.XORKeyStream(U, passwdPad)
	case 3, 4:
		h := md5.New()
		h.Write(passwdPad)
		h.Write(enc.ID)
		U = h.Sum(U[:0])
		c, _ := rc4.NewCipher(fileEncryptionKey)
		c.XORKeyStream(U, U)

		tmpKey := make([]byte, len(fileEncryptionKey))
		for i := byte(1); i <= 19; i++ {
			for j := range tmpKey {
				tmpKey[j] = fileEncryptionKey[j] ^ i
			}
			c, _ = rc4.NewCipher(tmpKey)
			c.XORKeyStream(U, U)
		}
		// The remaining 16 bytes are arbitrary padding.
		U = append(U[:16], zero16...)
	default:
		panic("invalid security handler revision")
	}
	return U
}

// Algorithm 6: authenticate the user password, for R <= 4.
func (enc *Encryption) authenticateUser(paddedUserPwd []byte) ([]byte, bool) {
	key := enc.computeFileEncryptionKey(paddedUserPwd)
	U := enc.computeU(key)
	n := 32
	if enc.R >= 3 {
		n = 16
	}
	if !bytes.Equal(U[:n], enc.U[:n]) {
		return nil, false
	}
	return key, true
}

// Algorithm 7: authenticate the owner password, for R <= 4.
func (enc *Encryption) authenticateOwner(paddedOwnerPwd []byte) ([]byte, bool) {
	key := enc.ownerRC4Key(paddedOwnerPwd)

	buf := make([]byte, 32)
	copy(buf, enc.O)
	switch enc.R {
	case 2:
		c, _ := rc4.NewCipher(key)
		c.XORKeyStream(buf, buf)
	case 3, 4:
		tmpKey := make([]byte, len(key))
		for i := 19; i >= 0; i-- {
			for j := range tmpKey {
				tmpKey[j] = key[j] ^ byte(i)
			}
			c, _ := rc4.NewCipher(tmpKey)
			c.XORKeyStream(buf, buf)
		}
	}

	return enc.authenticateUser(buf)
}

// Algorithm 2.B: computing a hash (revision 6)
func slowHash(passwd, salt, U []byte) []byte {
	h := sha256.New()
	h.Write(passwd)
	h.Write(salt)
	h.Write(U)
	K := h.Sum(nil)

	K1 := make([]byte, 64*(len(passwd)+64+len(U)))

	// At least 64 rounds, then continue until the last byte of E is
	// at most round-32.
	for i := 0; i < 64 || K1[len(K1)-1] > byte(i-32); i++ {
		K1 = K1[:0]
		for j := 0; j < 64; j++ {
			K1 = append(K1, passwd...)
			K1 = append(K1, K...)
			K1 = append(K1, U...)
		}

		c, _ := aes.NewCipher(K[:16])
		cbc := cipher.NewCBCEncrypter(c, K[16:32])
		// len(K1) is a multiple of 64
		cbc.CryptBlocks(K1, K1)

		// (a*256)%3 == a%3, so summing the bytes gives the remainder
		// of the big-endian integer.
		var rem int
		for _, b := range K1[:16] {
			rem += int(b)
		}

		var h hash.Hash
		switch rem % 3 {
		case 0:
			h = sha256.New()
		case 1:
			h = sha512.New384()
		case 2:
			h = sha512.New()
		}
		h.Write(K1)
		K = h.Sum(K[:0])
	}

	return K[:32]
}

// Algorithm 8: computing U and UE (revision 6)
func (enc *Encryption) computeUAndUE(utf8UserPwd []byte) ([]byte, []byte, error) {
	buf := make([]byte, 16)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return nil, nil, err
	}

	out := slowHash(utf8UserPwd, buf[:8], nil) // user validation salt
	U := make([]byte, 0, 48)
	U = append(U, out...)
	U = append(U, buf...)

	key := slowHash(utf8UserPwd, buf[8:], nil) // user key salt
	c, _ := aes.NewCipher(key)
	cbc := cipher.NewCBCEncrypter(c, zero16)
	UE := make([]byte, 32)
	cbc.CryptBlocks(UE, enc.key)

	return U, UE, nil
}

// Algorithm 9: computing O and OE (revision 6)
func (enc *Encryption) computeOAndOE(utf8OwnerPwd []byte) ([]byte, []byte, error) {
	buf := make([]byte, 16)
	_, err := io.ReadFull(rand.Reader, buf)
	if err != nil {
		return nil, nil, err
	}

	out := slowHash(utf8OwnerPwd, buf[:8], enc.U) // owner validation salt
	O := make([]byte, 0, 48)
	O = append(O, out...)
	O = append(O, buf...)

	key := slowHash(utf8OwnerPwd, buf[8:], enc.U) // owner key salt
	c, _ := aes.NewCipher(key)
	cbc := cipher.NewCBCEncrypter(c, zero16)
	OE := make([]byte, 32)
	cbc.CryptBlocks(OE, enc.key)

	return O, OE, nil
}

// Algorithm 10: computing the Perms value (revision 6)
func (enc *Encryption) computePerms(fileEncryptionKey []byte) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf, enc.P)
	buf[4] = 0xFF
	buf[5] = 0xFF
	buf[6] = 0xFF
	buf[7] = 0xFF
	if enc.unencryptedMetadata {
		buf[8] = 'F'
	} else {
		buf[8] = 'T'
	}
	buf[9] = 'a'
	buf[10] = 'd'
	buf[11] = 'b'
	_, _ = io.ReadFull(rand.Reader, buf[12:])

	c, _ := aes.NewCipher(fileEncryptionKey)
	c.Encrypt(buf, buf)
	return buf
}

// Algorithm 11: authenticate the user password (revision 6)
func (enc *Encryption) authenticateUser6(utf8Passwd []byte) ([]byte, bool) {
	hash := slowHash(utf8Passwd, enc.U[32:40], nil)
	if !bytes.Equal(hash, enc.U[:32]) {
		return nil, false
	}

	key := slowHash(utf8Passwd, enc.U[40:48], nil) // user key salt
	c, _ := aes.NewCipher(key)
	cbc := cipher.NewCBCDecrypter(c, zero16)
	fileEncryptionKey := make([]byte, 32)
	cbc.CryptBlocks(fileEncryptionKey, enc.UE)

	if !enc.checkPerms(fileEncryptionKey) {
		return nil, false
	}
	return fileEncryptionKey, true
}

// Algorithm 12: authenticate the owner password (revision 6)
func (enc *Encryption) authenticateOwner6(utf8Passwd []byte) ([]byte, bool) {
	hash := slowHash(utf8Passwd, enc.O[32:40], enc.U)
	if !bytes.Equal(hash, enc.O[:32]) {
		return nil, false
	}

	key := slowHash(utf8Passwd, enc.O[40:48], enc.U) // owner key salt
	c, _ := aes.NewCipher(key)
	cbc := cipher.NewCBCDecrypter(c, zero16)
	fileEncryptionKey := make([]byte, 32)
	cbc.CryptBlocks(fileEncryptionKey, enc.OE)

	if !enc.checkPerms(fileEncryptionKey) {
		return nil, false
	}
	return fileEncryptionKey, true
}

func (enc *Encryption) checkPerms(fileEncryptionKey []byte) bool {
	buf := make([]byte, 16)
	c, _ := aes.NewCipher(fileEncryptionKey)
	c.Decrypt(buf, enc.Perms)
	if !bytes.Equal(buf[9:12], []byte("adb")) {
		return false
	}
	if binary.LittleEndian.Uint32(buf[:4]) != enc.P {
		return false
	}
	emdCode := byte('T')
	if enc.unencryptedMetadata {
		emdCode = 'F'
	}
	return buf[8] == emdCode
}

// utf8Passwd prepares a password for revision 6, using SASLprep.
func utf8Passwd(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, errInvalidPassword
	}
	buf := []byte(prepped)
	if len(buf) > 127 {
		buf = buf[:127]
	}
	return buf, nil
}

// padPasswd returns the password padded or truncated to 32 bytes.
// Passwords which cannot be represented in PDFDocEncoding are used as
// UTF-8 bytes.
func padPasswd(passwd string) []byte {
	buf, ok := PDFDocEncode(passwd)
	if !ok {
		buf = []byte(passwd)
	}

	padded := make([]byte, 32)
	n := copy(padded, buf)
	copy(padded[n:], passwdPad)
	return padded
}

var passwdPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

var zero16 = []byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var (
	errInvalidPassword = errors.New("invalid password")
	errCorrupted       = errors.New("corrupted ciphertext")
)

type cipherType int

const (
	cipherUnknown cipherType = iota
	cipherAES
	cipherRC4
)

func (c cipherType) String() string {
	switch c {
	case cipherAES:
		return "AES"
	case cipherRC4:
		return "RC4"
	default:
		return "unknown cipher"
	}
}
