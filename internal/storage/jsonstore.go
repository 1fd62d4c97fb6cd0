// internal/storage/jsonstore.go
//
// 對帳報告的 JSON 序列化與反序列化，以及共用的「原子寫入」：
// 先寫入 .tmp 檔，再以 rename() 取代原檔，寫入中斷時原檔不會損壞。
package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"time"
)

// LoadReport 讀取指定路徑的 JSON 報告。
func LoadReport(path string) (Report, error) {
	var r Report
	f, err := os.Open(path)
	if err != nil {
		return r, err
	}
	defer f.Close()
	err = json.NewDecoder(f).Decode(&r)
	return r, err
}

// SaveReport 設定 Meta 後以縮排 JSON 原子寫入報告。
func SaveReport(path string, r Report) error {
	r.Meta.Storage = "json_report"
	if r.Meta.Version == 0 {
		r.Meta.Version = 1
	}
	r.Meta.Timestamp = time.Now()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return err
	}
	return WriteFileAtomic(path, buf.Bytes())
}

// WriteFileAtomic 寫入 path+".tmp" 後 rename 取代 path。
func WriteFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
