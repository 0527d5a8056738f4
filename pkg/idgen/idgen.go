/*
 * @Description: ID 生成和解码服务
 * @Author: 沐音
 * @Date: 2025-09-01 20:12:44
 * @LastEditTime: 2025-11-06 22:31:09
 * @LastEditors: 沐音
 */
package idgen

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder 是用于生成和解码短 ID 的 Sqids 编码器实例。
var sqidsEncoder *sqids.Sqids

// DefaultAlphabet 是默认的字母表
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EntityType 定义了不同实体在生成公共 ID 时的类型标识。
const (
	EntityTypeUser         uint64 = 1 // 用户实体的类型标识
	EntityTypeWork         uint64 = 2 // 音乐作品实体的类型标识
	EntityTypeWorkVersion  uint64 = 3 // 作品历史版本实体的类型标识
	EntityTypeWorkProposal uint64 = 4 // 协作提案实体的类型标识
	EntityTypeComment      uint64 = 5 // 评论实体的类型标识
	EntityTypeWorkStar     uint64 = 6 // 作品收藏实体的类型标识
)

// InitSqidsEncoder 初始化 Sqids 编码器，必须在应用启动时调用一次。
func InitSqidsEncoder() error {
	s, err := sqids.New(
		sqids.Options{
			MinLength: 4,
			Alphabet:  DefaultAlphabet,
		},
	)
	if err != nil {
		return fmt.Errorf("初始化 Sqids 编码器失败: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID 将内部数据库 ID 与实体类型一起编码为对外暴露的公共 ID。
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("Sqids 编码器未初始化")
	}

	numbersToEncode := []uint64{uint64(dbID), entityType}

	id, err := sqidsEncoder.Encode(numbersToEncode)
	if err != nil {
		return "", fmt.Errorf("编码公共ID失败: %w", err)
	}

	return id, nil
}

// DecodePublicID 解码公共 ID，返回内部数据库 ID 与实体类型。
func DecodePublicID(publicID string) (dbID uint, entityType uint64, err error) {
	if sqidsEncoder == nil {
		return 0, 0, fmt.Errorf("Sqids 编码器未初始化")
	}

	numbers := sqidsEncoder.Decode(publicID)

	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("无法从公共ID解码出预期数量的数字(期望2个，得到%d个)", len(numbers))
	}

	return uint(numbers[0]), numbers[1], nil
}

// DecodePublicIDWithType 解码公共 ID 并校验其实体类型。
func DecodePublicIDWithType(publicID string, wantType uint64) (uint, error) {
	dbID, entityType, err := DecodePublicID(publicID)
	if err != nil {
		return 0, err
	}
	if entityType != wantType {
		return 0, fmt.Errorf("公共ID类型不匹配(期望%d，得到%d)", wantType, entityType)
	}
	return dbID, nil
}
