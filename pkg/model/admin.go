package model

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const RoleServerAdmin = "_admin"

// pbkdf2Prefix marks hashed admin passwords, the format is
// -pbkdf2-<derived key>,<salt>,<iterations> like in the
// CouchDB [admins] section.
const pbkdf2Prefix = "-pbkdf2-"

var (
	adminHash          = sha1.New
	adminHashKeyLength = 20
	adminHashIter      = 10
)

type AdminUser struct {
	Username string
	Password string
}

func (u AdminUser) String() string {
	return "<AdminUser Username=" + u.Username + ">"
}

func (u AdminUser) Session() *Session {
	return &Session{
		Name:  u.Username,
		Roles: []string{RoleServerAdmin},
	}
}

// VerifyPassword compares plain and -pbkdf2- hashed passwords
func (u AdminUser) VerifyPassword(password string) bool {
	if !strings.HasPrefix(u.Password, pbkdf2Prefix) {
		return subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
	}

	parts := strings.Split(strings.TrimPrefix(u.Password, pbkdf2Prefix), ",")
	if len(parts) != 3 {
		return false
	}
	key, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	iterations, err := strconv.Atoi(parts[2])
	if err != nil {
		return false
	}

	dk := pbkdf2.Key([]byte(password), []byte(parts[1]), iterations, len(key), adminHash)
	return subtle.ConstantTimeCompare(key, dk) == 1
}

// HashPassword replaces a plain password with
// its -pbkdf2- representation
func (u *AdminUser) HashPassword() error {
	if strings.HasPrefix(u.Password, pbkdf2Prefix) {
		return nil
	}

	var salt [16]byte
	_, err := rand.Read(salt[:])
	if err != nil {
		return err
	}
	s := hex.EncodeToString(salt[:])
	dk := pbkdf2.Key([]byte(u.Password), []byte(s), adminHashIter, adminHashKeyLength, adminHash)
	u.Password = pbkdf2Prefix + hex.EncodeToString(dk) + "," + s + "," + strconv.Itoa(adminHashIter)
	return nil
}

type AdminUsers []AdminUser

func (a AdminUsers) Authenticate(username, password string) *AdminUser {
	for _, user := range a {
		if user.Username == username && user.VerifyPassword(password) {
			return &user
		}
	}
	return nil
}

// Lookup returns the admin with the username or nil
func (a AdminUsers) Lookup(username string) *AdminUser {
	for _, user := range a {
		if user.Username == username {
			return &user
		}
	}
	return nil
}

// AdminParty is true if no admins are configured,
// every request is treated as admin request then
func (a AdminUsers) AdminParty() bool {
	return len(a) == 0
}

func ParseAdmins(admins string) (AdminUsers, error) {
	if admins == "" {
		return nil, nil
	}

	userParts := strings.Split(admins, ";")
	users := make(AdminUsers, len(userParts))

	for i, userPart := range userParts {
		userPass := strings.SplitN(userPart, ":", 2)
		if len(userPass) <= 1 || userPass[0] == "" {
			return nil, fmt.Errorf("invalid admins string part %d", i+1)
		}
		users[i].Username = userPass[0]
		users[i].Password = userPass[1]
	}

	return users, nil
}
