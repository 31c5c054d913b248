package browserdump

import (
	"crypto/aes"
	"crypto/cipher"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestSQLite(t *testing.T, path string) *sql.DB {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(path)+"?mode=rwc")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type testHistoryRow struct {
	url        string
	title      string
	visitCount int64
	lastVisit  int64
}

func writeHistoryStore(t *testing.T, profileDir string, rows []testHistoryRow) {
	t.Helper()
	db := openTestSQLite(t, filepath.Join(profileDir, "History"))
	if _, err := db.Exec(`CREATE TABLE urls(id INTEGER PRIMARY KEY, url TEXT, title TEXT, visit_count INTEGER, last_visit_time INTEGER)`); err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if _, err := db.Exec(
			`INSERT INTO urls(url, title, visit_count, last_visit_time) VALUES(?,?,?,?)`,
			r.url, r.title, r.visitCount, r.lastVisit,
		); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
}

type testCookieRow struct {
	hostKey        string
	name           string
	value          string
	encryptedValue []byte
	path           string
	created        int64
	expires        int64
	lastAccessed   int64
	secure         int64
	httpOnly       int64
}

func writeCookiesStore(t *testing.T, profileDir string, metaVersion string, rows []testCookieRow) {
	t.Helper()
	db := openTestSQLite(t, filepath.Join(profileDir, "Network", "Cookies"))
	if _, err := db.Exec(`CREATE TABLE meta(key TEXT PRIMARY KEY, value TEXT)`); err != nil {
		t.Fatal(err)
	}
	if metaVersion != "" {
		if _, err := db.Exec(`INSERT INTO meta(key,value) VALUES('version',?)`, metaVersion); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := db.Exec(`CREATE TABLE cookies(host_key TEXT, name TEXT, value TEXT, encrypted_value BLOB, path TEXT, creation_utc INTEGER, expires_utc INTEGER, last_access_utc INTEGER, is_secure INTEGER, is_httponly INTEGER)`); err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		if _, err := db.Exec(
			`INSERT INTO cookies(host_key,name,value,encrypted_value,path,creation_utc,expires_utc,last_access_utc,is_secure,is_httponly) VALUES(?,?,?,?,?,?,?,?,?,?)`,
			r.hostKey, r.name, r.value, r.encryptedValue, r.path, r.created, r.expires, r.lastAccessed, r.secure, r.httpOnly,
		); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeBookmarksFile(t *testing.T, profileDir string, jsonDoc string) {
	t.Helper()
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(profileDir, "Bookmarks"), []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func pkcs7Pad(t *testing.T, b []byte) []byte {
	t.Helper()
	paddingLen := aes.BlockSize - (len(b) % aes.BlockSize)
	if paddingLen == 0 {
		paddingLen = aes.BlockSize
	}
	out := make([]byte, 0, len(b)+paddingLen)
	out = append(out, b...)
	for i := 0; i < paddingLen; i++ {
		out = append(out, byte(paddingLen))
	}
	return out
}

func encryptAESCBCForTest(t *testing.T, prefix string, key []byte, plaintext []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	iv := []byte(chromiumAESCBCIV)
	padded := pkcs7Pad(t, plaintext)
	ciphertext := make([]byte, len(padded))
	cbc := cipher.NewCBCEncrypter(block, iv)
	cbc.CryptBlocks(ciphertext, padded)
	return append([]byte(prefix), ciphertext...)
}

func encryptAESGCMForTest(t *testing.T, prefix string, key []byte, nonce []byte, plaintext []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		t.Fatal(err)
	}
	ciphertextAndTag := aesgcm.Seal(nil, nonce, plaintext, nil)
	out := make([]byte, 0, len(prefix)+len(nonce)+len(ciphertextAndTag))
	out = append(out, []byte(prefix)...)
	out = append(out, nonce...)
	out = append(out, ciphertextAndTag...)
	return out
}

// 2020-01-01T00:00:00Z in Chromium store time.
const microsJan2020 = int64(13222310400000000)
