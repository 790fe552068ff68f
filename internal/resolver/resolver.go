package resolver

import (
	"strconv"
	"strings"
)

// DirPlaceholder는 프로필 디렉토리로 치환되는 토큰이다.
const DirPlaceholder = "{}"

// Entry는 프로필의 한 줄에서 파싱된 명령 이름과 스크립트다.
type Entry struct {
	Name   string
	Script string
	Line   int // 1부터 시작하는 줄 번호
}

// Malformed는 콜론이 없어 건너뛴 줄이다.
type Malformed struct {
	Line int
	Text string
}

// Options는 Resolve의 출력 형식을 지정한다. 빈 값은 기본값이다.
type Options struct {
	Prefix string
	Suffix string
	Args   []string
}

// Parse는 프로필 내용을 파일 순서대로 Entry 목록으로 변환한다.
// 빈 줄과 콜론이 없는 줄은 건너뛴다.
func Parse(content string) []Entry {
	entries, _ := ParseWithMalformed(content)
	return entries
}

// ParseWithMalformed는 Parse와 같지만 건너뛴 줄도 함께 반환한다.
func ParseWithMalformed(content string) ([]Entry, []Malformed) {
	var entries []Entry
	var malformed []Malformed
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		entry, ok := parseLine(line)
		if !ok {
			malformed = append(malformed, Malformed{Line: i + 1, Text: line})
			continue
		}
		entry.Line = i + 1
		entries = append(entries, entry)
	}
	return entries, malformed
}

func parseLine(line string) (Entry, bool) {
	name, script, ok := strings.Cut(line, ":")
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: strings.TrimSpace(name), Script: strings.TrimSpace(script)}, true
}

// Names는 모든 명령 이름을 파일 순서대로 공백 하나로 이어 붙인다.
// 중복 이름도 등장 횟수만큼 포함된다. 빈 이름이 만드는 앞뒤 공백은 잘라낸다.
func Names(entries []Entry) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return strings.TrimSpace(strings.Join(names, " "))
}

// Lookup은 이름이 정확히 일치하는 첫 번째 Entry를 반환한다.
func Lookup(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Resolve는 content에서 name을 찾아 prefix + 스크립트 + suffix를 만든다.
// 모든 부분의 {}는 dir로 치환되고, 스크립트의 {0}, {1} ... 은 opts.Args로 채워진다.
// 일치하는 명령이 없으면 false를 반환한다.
func Resolve(content, dir, name string, opts Options) (string, bool) {
	entry, ok := Lookup(Parse(content), name)
	if !ok {
		return "", false
	}
	return substituteDir(opts.Prefix, dir) + fillScript(entry.Script, dir, opts.Args) + substituteDir(opts.Suffix, dir), true
}

func substituteDir(s, dir string) string {
	return strings.ReplaceAll(s, DirPlaceholder, dir)
}

func hole(n int) string {
	return "{" + strconv.Itoa(n) + "}"
}

// countHoles는 {0}부터 연속으로 등장하는 번호 토큰의 개수를 센다.
func countHoles(script string) int {
	n := 0
	for strings.Contains(script, hole(n)) {
		n++
	}
	return n
}

// fillScript는 원본 스크립트의 {}와 번호 토큰을 한 번에 치환한다.
// 삽입된 디렉토리나 인자 텍스트는 다시 치환되지 않는다.
func fillScript(script, dir string, args []string) string {
	holes := countHoles(script)
	pairs := make([]string, 0, 2+holes*2)
	pairs = append(pairs, DirPlaceholder, dir)
	for i := range holes {
		arg := ""
		if i < len(args) {
			arg = args[i]
		}
		pairs = append(pairs, hole(i), arg)
	}
	script = strings.NewReplacer(pairs...).Replace(script)
	if holes < len(args) {
		script += " " + strings.Join(args[holes:], " ")
	}
	return script
}
