package cart

import (
	"fmt"
	"strconv"
	"strings"
)

// Token はカートの中身。商品IDの順序付き多重集合で、
// 同じIDの繰り返しが数量を表す。値型で、操作は新しいTokenを返す。
// 永続化（cookie）は呼び出し側の責務。
type Token struct {
	ids []int64
}

// ParseToken はカンマ区切り文字列をTokenにする。
// 空文字列は空のカート。数値でない項目はエラー。
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Token{}, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			return Token{}, fmt.Errorf("invalid cart entry %q", p)
		}
		ids = append(ids, id)
	}
	return Token{ids: ids}, nil
}

// Add は1個分を末尾に追加した新しいTokenを返す。
func (t Token) Add(productID int64) Token {
	ids := make([]int64, 0, len(t.ids)+1)
	ids = append(ids, t.ids...)
	ids = append(ids, productID)
	return Token{ids: ids}
}

// RemoveOne は最初に見つかった1個分だけを除いた新しいTokenを返す。
func (t Token) RemoveOne(productID int64) Token {
	ids := make([]int64, 0, len(t.ids))
	removed := false
	for _, id := range t.ids {
		if !removed && id == productID {
			removed = true
			continue
		}
		ids = append(ids, id)
	}
	return Token{ids: ids}
}

// RemoveAll は該当商品を全部除いた新しいTokenを返す。
func (t Token) RemoveAll(productID int64) Token {
	ids := make([]int64, 0, len(t.ids))
	for _, id := range t.ids {
		if id == productID {
			continue
		}
		ids = append(ids, id)
	}
	return Token{ids: ids}
}

func (t Token) IsEmpty() bool {
	return len(t.ids) == 0
}

func (t Token) Len() int {
	return len(t.ids)
}

// String はcookieに入れる表現。空なら空文字列。
func (t Token) String() string {
	if len(t.ids) == 0 {
		return ""
	}
	parts := make([]string, len(t.ids))
	for i, id := range t.ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

// Counts は商品IDごとの出現回数。これが数量の正とする。
func (t Token) Counts() map[int64]int64 {
	counts := make(map[int64]int64, len(t.ids))
	for _, id := range t.ids {
		counts[id]++
	}
	return counts
}

// UniqueIDs は初出順のユニークなID列。
func (t Token) UniqueIDs() []int64 {
	seen := make(map[int64]bool, len(t.ids))
	ids := make([]int64, 0, len(t.ids))
	for _, id := range t.ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
