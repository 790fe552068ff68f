// Package locator finds the nearest profile file by walking from a start
// directory up to the filesystem root.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultFileName은 프로필 파일의 기본 이름이다.
const DefaultFileName = ".ok"

// ErrNotFound는 시작 디렉토리부터 루트까지 프로필 파일이 없을 때 반환된다.
var ErrNotFound = errors.New("프로필 파일 없음")

// ErrUnreadable는 프로필 파일 또는 탐색 경로를 읽을 수 없을 때 반환된다.
var ErrUnreadable = errors.New("프로필 파일을 읽을 수 없음")

// Profile은 발견된 프로필 파일이다. 한 번 읽은 뒤에는 변경하지 않는다.
type Profile struct {
	// Dir은 프로필 파일이 위치한 디렉토리의 절대 경로다. {} 치환에 사용된다.
	Dir string
	// Path는 프로필 파일 자체의 절대 경로다.
	Path    string
	Content string
}

// Locate는 startDir에서 시작해 상위 디렉토리로 올라가며 fileName을 찾는다.
// 가장 가까운 파일이 이긴다. 찾지 못하면 ErrNotFound를 반환한다.
// 후보 파일의 권한 오류는 건너뛰지 않고 ErrUnreadable로 보고한다.
func Locate(startDir, fileName string) (*Profile, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("locator.Locate: %w: %w", ErrUnreadable, err)
	}

	for {
		candidate := filepath.Join(dir, fileName)
		slog.Debug("check profile", slog.String("path", candidate))

		info, err := os.Stat(candidate)
		switch {
		case err == nil && info.Mode().IsRegular():
			data, err := os.ReadFile(candidate) //nolint:gosec // G304: path is built from the walk.
			if err != nil {
				return nil, fmt.Errorf("locator.Locate: %w: %w", ErrUnreadable, err)
			}
			slog.Debug("found profile", slog.String("path", candidate))
			return &Profile{Dir: dir, Path: candidate, Content: string(data)}, nil
		case err == nil:
			// 디렉토리 등 일반 파일이 아닌 항목은 프로필이 아니다.
			slog.Debug("skip non-regular profile entry", slog.String("path", candidate))
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("locator.Locate: %w: %w", ErrUnreadable, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}
