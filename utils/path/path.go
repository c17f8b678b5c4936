package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootEnv 部署後的二進位檔不在原始碼目錄時，以此指定設定檔根目錄
const RootEnv = "MANNAMSALON_ROOT"

// RootPath 設定檔相對路徑的基準；未設定 MANNAMSALON_ROOT 時回推到原始碼根目錄
func RootPath() string {
	if root := os.Getenv(RootEnv); root != "" {
		return filepath.Clean(root)
	}
	// /project/utils/path/path.go → /project
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		wd, _ := os.Getwd()
		return wd
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Resolve 相對路徑接在 base 之下，絕對路徑原樣回傳
func Resolve(base string, elems ...string) string {
	p := filepath.Join(elems...)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(append([]string{base}, elems...)...)
}

// Exists 路径是否存在
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
