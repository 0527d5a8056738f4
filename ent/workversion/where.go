// Code generated by ent, DO NOT EDIT.

package workversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/muselink-c/muselink-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldID, id))
}

// WorkID applies equality check predicate on the "work_id" field. It's identical to WorkIDEQ.
func WorkID(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldWorkID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldVersion, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldUserID, v))
}

// CommitMessage applies equality check predicate on the "commit_message" field. It's identical to CommitMessageEQ.
func CommitMessage(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldCommitMessage, v))
}

// ChangesSummary applies equality check predicate on the "changes_summary" field. It's identical to ChangesSummaryEQ.
func ChangesSummary(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldChangesSummary, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldFilePath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldFileSize, v))
}

// IsMerged applies equality check predicate on the "is_merged" field. It's identical to IsMergedEQ.
func IsMerged(v bool) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldIsMerged, v))
}

// MergedAt applies equality check predicate on the "merged_at" field. It's identical to MergedAtEQ.
func MergedAt(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldMergedAt, v))
}

// MergedBy applies equality check predicate on the "merged_by" field. It's identical to MergedByEQ.
func MergedBy(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldMergedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// WorkIDEQ applies the EQ predicate on the "work_id" field.
func WorkIDEQ(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldWorkID, v))
}

// WorkIDNEQ applies the NEQ predicate on the "work_id" field.
func WorkIDNEQ(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldWorkID, v))
}

// WorkIDIn applies the In predicate on the "work_id" field.
func WorkIDIn(vs ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldWorkID, vs...))
}

// WorkIDNotIn applies the NotIn predicate on the "work_id" field.
func WorkIDNotIn(vs ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldWorkID, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldVersion, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldUserID, v))
}

// CommitMessageEQ applies the EQ predicate on the "commit_message" field.
func CommitMessageEQ(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldCommitMessage, v))
}

// CommitMessageNEQ applies the NEQ predicate on the "commit_message" field.
func CommitMessageNEQ(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldCommitMessage, v))
}

// CommitMessageIn applies the In predicate on the "commit_message" field.
func CommitMessageIn(vs ...string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldCommitMessage, vs...))
}

// CommitMessageNotIn applies the NotIn predicate on the "commit_message" field.
func CommitMessageNotIn(vs ...string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldCommitMessage, vs...))
}

// CommitMessageGT applies the GT predicate on the "commit_message" field.
func CommitMessageGT(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldCommitMessage, v))
}

// CommitMessageGTE applies the GTE predicate on the "commit_message" field.
func CommitMessageGTE(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldCommitMessage, v))
}

// CommitMessageLT applies the LT predicate on the "commit_message" field.
func CommitMessageLT(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldCommitMessage, v))
}

// CommitMessageLTE applies the LTE predicate on the "commit_message" field.
func CommitMessageLTE(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldCommitMessage, v))
}

// CommitMessageContains applies the Contains predicate on the "commit_message" field.
func CommitMessageContains(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldContains(FieldCommitMessage, v))
}

// CommitMessageHasPrefix applies the HasPrefix predicate on the "commit_message" field.
func CommitMessageHasPrefix(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldHasPrefix(FieldCommitMessage, v))
}

// CommitMessageHasSuffix applies the HasSuffix predicate on the "commit_message" field.
func CommitMessageHasSuffix(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldHasSuffix(FieldCommitMessage, v))
}

// CommitMessageEqualFold applies the EqualFold predicate on the "commit_message" field.
func CommitMessageEqualFold(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEqualFold(FieldCommitMessage, v))
}

// CommitMessageContainsFold applies the ContainsFold predicate on the "commit_message" field.
func CommitMessageContainsFold(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldContainsFold(FieldCommitMessage, v))
}

// ChangesSummaryEQ applies the EQ predicate on the "changes_summary" field.
func ChangesSummaryEQ(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldChangesSummary, v))
}

// ChangesSummaryNEQ applies the NEQ predicate on the "changes_summary" field.
func ChangesSummaryNEQ(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldChangesSummary, v))
}

// ChangesSummaryIn applies the In predicate on the "changes_summary" field.
func ChangesSummaryIn(vs ...string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldChangesSummary, vs...))
}

// ChangesSummaryNotIn applies the NotIn predicate on the "changes_summary" field.
func ChangesSummaryNotIn(vs ...string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldChangesSummary, vs...))
}

// ChangesSummaryGT applies the GT predicate on the "changes_summary" field.
func ChangesSummaryGT(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldChangesSummary, v))
}

// ChangesSummaryGTE applies the GTE predicate on the "changes_summary" field.
func ChangesSummaryGTE(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldChangesSummary, v))
}

// ChangesSummaryLT applies the LT predicate on the "changes_summary" field.
func ChangesSummaryLT(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldChangesSummary, v))
}

// ChangesSummaryLTE applies the LTE predicate on the "changes_summary" field.
func ChangesSummaryLTE(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldChangesSummary, v))
}

// ChangesSummaryContains applies the Contains predicate on the "changes_summary" field.
func ChangesSummaryContains(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldContains(FieldChangesSummary, v))
}

// ChangesSummaryHasPrefix applies the HasPrefix predicate on the "changes_summary" field.
func ChangesSummaryHasPrefix(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldHasPrefix(FieldChangesSummary, v))
}

// ChangesSummaryHasSuffix applies the HasSuffix predicate on the "changes_summary" field.
func ChangesSummaryHasSuffix(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldHasSuffix(FieldChangesSummary, v))
}

// ChangesSummaryIsNil applies the IsNil predicate on the "changes_summary" field.
func ChangesSummaryIsNil() predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIsNull(FieldChangesSummary))
}

// ChangesSummaryNotNil applies the NotNil predicate on the "changes_summary" field.
func ChangesSummaryNotNil() predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotNull(FieldChangesSummary))
}

// ChangesSummaryEqualFold applies the EqualFold predicate on the "changes_summary" field.
func ChangesSummaryEqualFold(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEqualFold(FieldChangesSummary, v))
}

// ChangesSummaryContainsFold applies the ContainsFold predicate on the "changes_summary" field.
func ChangesSummaryContainsFold(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldContainsFold(FieldChangesSummary, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldContainsFold(FieldFilePath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldFileSize, v))
}

// IsMergedEQ applies the EQ predicate on the "is_merged" field.
func IsMergedEQ(v bool) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldIsMerged, v))
}

// IsMergedNEQ applies the NEQ predicate on the "is_merged" field.
func IsMergedNEQ(v bool) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldIsMerged, v))
}

// MergedAtEQ applies the EQ predicate on the "merged_at" field.
func MergedAtEQ(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldMergedAt, v))
}

// MergedAtNEQ applies the NEQ predicate on the "merged_at" field.
func MergedAtNEQ(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldMergedAt, v))
}

// MergedAtIn applies the In predicate on the "merged_at" field.
func MergedAtIn(vs ...time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldMergedAt, vs...))
}

// MergedAtNotIn applies the NotIn predicate on the "merged_at" field.
func MergedAtNotIn(vs ...time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldMergedAt, vs...))
}

// MergedAtGT applies the GT predicate on the "merged_at" field.
func MergedAtGT(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldMergedAt, v))
}

// MergedAtGTE applies the GTE predicate on the "merged_at" field.
func MergedAtGTE(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldMergedAt, v))
}

// MergedAtLT applies the LT predicate on the "merged_at" field.
func MergedAtLT(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldMergedAt, v))
}

// MergedAtLTE applies the LTE predicate on the "merged_at" field.
func MergedAtLTE(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldMergedAt, v))
}

// MergedAtIsNil applies the IsNil predicate on the "merged_at" field.
func MergedAtIsNil() predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIsNull(FieldMergedAt))
}

// MergedAtNotNil applies the NotNil predicate on the "merged_at" field.
func MergedAtNotNil() predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotNull(FieldMergedAt))
}

// MergedByEQ applies the EQ predicate on the "merged_by" field.
func MergedByEQ(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldMergedBy, v))
}

// MergedByNEQ applies the NEQ predicate on the "merged_by" field.
func MergedByNEQ(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldMergedBy, v))
}

// MergedByIn applies the In predicate on the "merged_by" field.
func MergedByIn(vs ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldMergedBy, vs...))
}

// MergedByNotIn applies the NotIn predicate on the "merged_by" field.
func MergedByNotIn(vs ...uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldMergedBy, vs...))
}

// MergedByGT applies the GT predicate on the "merged_by" field.
func MergedByGT(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldMergedBy, v))
}

// MergedByGTE applies the GTE predicate on the "merged_by" field.
func MergedByGTE(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldMergedBy, v))
}

// MergedByLT applies the LT predicate on the "merged_by" field.
func MergedByLT(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldMergedBy, v))
}

// MergedByLTE applies the LTE predicate on the "merged_by" field.
func MergedByLTE(v uint) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldMergedBy, v))
}

// MergedByIsNil applies the IsNil predicate on the "merged_by" field.
func MergedByIsNil() predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIsNull(FieldMergedBy))
}

// MergedByNotNil applies the NotNil predicate on the "merged_by" field.
func MergedByNotNil() predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotNull(FieldMergedBy))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkVersion {
	return predicate.WorkVersion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasWork applies the HasEdge predicate on the "work" edge.
func HasWork() predicate.WorkVersion {
	return predicate.WorkVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WorkTable, WorkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorkWith applies the HasEdge predicate on the "work" edge with a given conditions (other predicates).
func HasWorkWith(preds ...predicate.Work) predicate.WorkVersion {
	return predicate.WorkVersion(func(s *sql.Selector) {
		step := newWorkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProposal applies the HasEdge predicate on the "proposal" edge.
func HasProposal() predicate.WorkVersion {
	return predicate.WorkVersion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ProposalTable, ProposalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalWith applies the HasEdge predicate on the "proposal" edge with a given conditions (other predicates).
func HasProposalWith(preds ...predicate.WorkProposal) predicate.WorkVersion {
	return predicate.WorkVersion(func(s *sql.Selector) {
		step := newProposalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkVersion) predicate.WorkVersion {
	return predicate.WorkVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkVersion) predicate.WorkVersion {
	return predicate.WorkVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkVersion) predicate.WorkVersion {
	return predicate.WorkVersion(sql.NotPredicates(p))
}
