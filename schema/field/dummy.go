package field

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// dummyEpoch is the first date handed out to temporal keys.
var dummyEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

var dummyWords = []string{
	"amber", "birch", "cobalt", "delta", "ember", "fjord", "granite", "harbor",
	"indigo", "juniper", "kestrel", "lumen", "meadow", "nickel", "orchid", "pebble",
}

// dummyNamespace seeds the name-based UUIDs of key members.
var dummyNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("aggregen/dummy"))

func rng(req DummyRequest) *rand.Rand {
	if req.Rand != nil {
		return req.Rand
	}
	return rand.New(rand.NewPCG(uint64(req.Index), 0))
}

func dummyWord(req DummyRequest) any {
	limit, ok, err := IntAttr(req.Attrs, AttrMaxLength)
	if !ok || err != nil {
		limit = 0
	}
	if req.Key {
		return dummyKey(req.Member, req.Index+1, limit)
	}
	s := dummyWords[rng(req).IntN(len(dummyWords))]
	if rs := []rune(s); limit > 0 && len(rs) > limit {
		s = string(rs[:limit])
	}
	return s
}

// dummyKey formats "<member>-<n>" in at most limit runes by trimming the
// member name from the left. The digits of n are never cut, so a limit
// shorter than them yields just the digits.
func dummyKey(member string, n, limit int) string {
	digits := strconv.Itoa(n)
	s := member + "-" + digits
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	keep := limit - len(digits)
	if keep <= 0 {
		return digits
	}
	prefix := []rune(member + "-")
	return string(prefix[len(prefix)-keep:]) + digits
}

func dummySentence(req DummyRequest) any {
	r := rng(req)
	words := make([]string, 3+r.IntN(5))
	for i := range words {
		words[i] = dummyWords[r.IntN(len(dummyWords))]
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

func dummyInt(req DummyRequest) any {
	if req.Key {
		return req.Index + 1
	}
	return rng(req).IntN(1000)
}

func dummyDecimal(req DummyRequest) any {
	if req.Key {
		return float64(req.Index + 1)
	}
	scale := 2
	if n, ok, err := IntAttr(req.Attrs, AttrScale); ok && err == nil && n >= 0 {
		scale = n
	}
	p := math.Pow10(scale)
	return math.Round(rng(req).Float64()*1000*p) / p
}

func dummyDate(req DummyRequest) any {
	if req.Key {
		return dummyEpoch.AddDate(0, 0, req.Index)
	}
	return dummyEpoch.AddDate(0, 0, rng(req).IntN(3650))
}

func dummyDateTime(req DummyRequest) any {
	if req.Key {
		return dummyEpoch.Add(time.Duration(req.Index) * time.Hour)
	}
	return dummyEpoch.Add(time.Duration(rng(req).Int64N(int64(10 * 365 * 24 * time.Hour))).Truncate(time.Second))
}

func dummyYearMonth(req DummyRequest) any {
	if req.Key {
		return dummyEpoch.AddDate(0, req.Index, 0)
	}
	return dummyEpoch.AddDate(0, rng(req).IntN(120), 0)
}

func dummyYear(req DummyRequest) any {
	if req.Key {
		return dummyEpoch.Year() + req.Index
	}
	return 1990 + rng(req).IntN(40)
}

func dummyBool(req DummyRequest) any {
	if req.Key {
		return req.Index%2 == 1
	}
	return rng(req).IntN(2) == 1
}

func dummyBytes(req DummyRequest) any {
	r := rng(req)
	b := make([]byte, 16)
	_, _ = (randReader{r}).Read(b)
	return b
}

func dummyUUID(req DummyRequest) any {
	if req.Key {
		return uuid.NewSHA1(dummyNamespace, fmt.Appendf(nil, "%s/%d", req.Member, req.Index))
	}
	u, err := uuid.NewRandomFromReader(randReader{rng(req)})
	if err != nil {
		return uuid.Nil
	}
	return u
}

func dummySequence(req DummyRequest) any {
	return int64(req.Index + 1)
}

// randReader adapts a math/rand/v2 source to io.Reader.
type randReader struct{ r *rand.Rand }

func (rr randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], rr.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
