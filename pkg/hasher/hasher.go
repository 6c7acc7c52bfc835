package hasher

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/craftgear/group-files-into-dirs/pkg/logger"
)

// CalculateHash 计算文件内容的 xxHash 值
func CalculateHash(fs afero.Fs, filePath string) (uint64, error) {
	file, err := fs.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return 0, fmt.Errorf("计算哈希失败: %w", err)
	}

	result := hash.Sum64()
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %x", filePath, result)
	return result, nil
}

// SameContent 比较两个文件的哈希值
func SameContent(fs afero.Fs, a, b string) (bool, error) {
	ha, err := CalculateHash(fs, a)
	if err != nil {
		return false, err
	}
	hb, err := CalculateHash(fs, b)
	if err != nil {
		return false, err
	}
	return ha == hb, nil
}
