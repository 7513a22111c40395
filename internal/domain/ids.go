package domain

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Collection names of the persisted layout.
const (
	CollectionCourses = "courses"
	CollectionPeople  = "people"
	CollectionLogs    = "logs"
	CollectionUsers   = "users"
	CollectionTodos   = "todos"
)

// Collections lists every persisted collection in hydration order.
var Collections = []string{
	CollectionCourses,
	CollectionPeople,
	CollectionLogs,
	CollectionUsers,
	CollectionTodos,
}

const (
	localIDPrefix = "local-"
	tempIDPrefix  = "tmp-"
)

var localIDSeq atomic.Uint64

// NewLocalID returns a client-generated, time-based identifier. Remote
// storage treats it as temporary and allocates its own id on first save.
func NewLocalID() string {
	return localIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10) +
		"-" + strconv.FormatUint(localIDSeq.Add(1), 10)
}

// IsTemporaryID reports whether id was generated on the client: the
// local-/tmp- prefixes and bare epoch-millisecond numbers.
func IsTemporaryID(id string) bool {
	if strings.HasPrefix(id, localIDPrefix) || strings.HasPrefix(id, tempIDPrefix) {
		return true
	}
	if len(id) < 12 {
		return false
	}
	_, err := strconv.ParseInt(id, 10, 64)
	return err == nil
}
