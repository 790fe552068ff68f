package cli

import (
	"github.com/hbjs97/ok/internal/config"
	"github.com/hbjs97/ok/internal/locator"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnreadable는 프로필 파일이나 탐색 경로를 읽을 수 없을 때의 sentinel error다.
	ErrUnreadable = locator.ErrUnreadable
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
