package cli

import (
	"errors"
)

// ExitCode는 ok의 종료 코드다.
// 프로필이나 명령을 찾지 못한 경우는 에러가 아니므로 ExitSuccess다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitUnreadable는 프로필 파일 또는 디렉토리 탐색 중 I/O 실패다.
	ExitUnreadable ExitCode = 2
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 3
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrUnreadable):
		return ExitUnreadable
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
