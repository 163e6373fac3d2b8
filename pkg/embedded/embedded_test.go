package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/exhibit.yaml": &fstest.MapFile{Data: []byte("lens:\n  radius: 80\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	Init(nil)
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)

	_, err := ReadFile(ExhibitConfigPath)
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() error = %v, 期望 ErrNotInitialized", err)
	}
	if Exists(ExhibitConfigPath) {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFile 测试路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/exhibit.yaml", false},
		{"带 ./ 前缀", "./data/exhibit.yaml", false},
		{"未知前缀", "assets/exhibit.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v, 期望 %v", tt.path, !tt.wantErr, tt.wantErr)
			}
		})
	}
}
