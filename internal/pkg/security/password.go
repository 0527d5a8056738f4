/*
 * @Description:
 * @Author: 沐音
 * @Date: 2025-09-02 11:32:46
 * @LastEditTime: 2025-09-02 11:40:12
 * @LastEditors: 沐音
 */
package security

import "golang.org/x/crypto/bcrypt"

// HashPassword 对密码进行哈希处理
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash 验证密码哈希
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
