package doctor

import (
	"errors"
	"fmt"

	"github.com/hbjs97/ok/internal/config"
	"github.com/hbjs97/ok/internal/locator"
	"github.com/hbjs97/ok/internal/resolver"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 사용자 설정 로드 결과를 보고한다.
func CheckConfig(cfg *config.Config, path string, loadErr error) DiagResult {
	if loadErr != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: loadErr.Error(),
			Fix:     fmt.Sprintf("%s 확인", path),
		}
	}
	if !cfg.Loaded {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s 없음, 기본값 사용", path),
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s 로드됨", path),
	}
}

// CheckProfile은 startDir에서 가장 가까운 프로필 파일을 찾는다.
// 파일 이름이 잘못됐거나, 찾지 못했거나, 읽을 수 없으면 Profile은 nil이다.
func CheckProfile(startDir, fileName string) (DiagResult, *locator.Profile) {
	if err := config.ValidateProfileFile(fileName); err != nil {
		return DiagResult{
			Name:    "profile",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "--profile-file 또는 profile_file에 경로 없는 파일 이름 사용",
		}, nil
	}
	p, err := locator.Locate(startDir, fileName)
	switch {
	case errors.Is(err, locator.ErrNotFound):
		return DiagResult{
			Name:    "profile",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 에서 루트까지 %s 없음", startDir, fileName),
			Fix:     fmt.Sprintf("프로젝트 루트에 %s 파일 생성", fileName),
		}, nil
	case err != nil:
		return DiagResult{
			Name:    "profile",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "파일 권한 확인",
		}, nil
	}
	return DiagResult{
		Name:    "profile",
		Status:  StatusOK,
		Message: p.Path,
	}, p
}

// CheckEntries는 프로필 내용을 검사해 건너뛴 줄과 중복 이름을 보고한다.
func CheckEntries(content string) []DiagResult {
	entries, malformed := resolver.ParseWithMalformed(content)

	var results []DiagResult
	if len(entries) == 0 {
		results = append(results, DiagResult{
			Name:    "entries",
			Status:  StatusWarn,
			Message: "명령 없음",
			Fix:     "<name>: <script> 형식으로 한 줄에 하나씩 작성",
		})
	} else {
		results = append(results, DiagResult{
			Name:    "entries",
			Status:  StatusOK,
			Message: fmt.Sprintf("명령 %d개", len(entries)),
		})
	}

	for _, m := range malformed {
		results = append(results, DiagResult{
			Name:    fmt.Sprintf("line_%d", m.Line),
			Status:  StatusWarn,
			Message: fmt.Sprintf("콜론이 없어 무시됨: %q", m.Text),
			Fix:     "<name>: <script> 형식 사용",
		})
	}

	seen := make(map[string]int)
	for _, e := range entries {
		if e.Name == "" {
			results = append(results, DiagResult{
				Name:    fmt.Sprintf("line_%d", e.Line),
				Status:  StatusWarn,
				Message: "명령 이름이 비어 있음",
			})
		}
		first, dup := seen[e.Name]
		if !dup {
			seen[e.Name] = e.Line
			continue
		}
		results = append(results, DiagResult{
			Name:    fmt.Sprintf("line_%d", e.Line),
			Status:  StatusWarn,
			Message: fmt.Sprintf("%q 중복, %d번째 줄 정의가 사용됨", e.Name, first),
		})
	}
	return results
}

// RunAll은 모든 진단을 실행한다.
func RunAll(cfg *config.Config, cfgPath string, loadErr error, startDir string) []DiagResult {
	results := []DiagResult{CheckConfig(cfg, cfgPath, loadErr)}
	if cfg == nil {
		cfg = config.Default()
	}
	profileResult, p := CheckProfile(startDir, cfg.ProfileFile)
	results = append(results, profileResult)
	if p != nil {
		results = append(results, CheckEntries(p.Content)...)
	}
	return results
}

// HasFailure는 FAIL 상태의 결과가 있는지 반환한다.
func HasFailure(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
