// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/muselink-c/muselink-app/ent/comment"
	"github.com/muselink-c/muselink-app/ent/schema"
	"github.com/muselink-c/muselink-app/ent/user"
	"github.com/muselink-c/muselink-app/ent/work"
	"github.com/muselink-c/muselink-app/ent/workproposal"
	"github.com/muselink-c/muselink-app/ent/workstar"
	"github.com/muselink-c/muselink-app/ent/workversion"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	commentMixin := schema.Comment{}.Mixin()
	commentMixinHooks0 := commentMixin[0].Hooks()
	comment.Hooks[0] = commentMixinHooks0[0]
	commentFields := schema.Comment{}.Fields()
	_ = commentFields
	// commentDescCreatedAt is the schema descriptor for created_at field.
	commentDescCreatedAt := commentFields[1].Descriptor()
	// comment.DefaultCreatedAt holds the default value on creation for the created_at field.
	comment.DefaultCreatedAt = commentDescCreatedAt.Default.(func() time.Time)
	// commentDescUpdatedAt is the schema descriptor for updated_at field.
	commentDescUpdatedAt := commentFields[2].Descriptor()
	// comment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comment.DefaultUpdatedAt = commentDescUpdatedAt.Default.(func() time.Time)
	// comment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comment.UpdateDefaultUpdatedAt = commentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// commentDescContent is the schema descriptor for content field.
	commentDescContent := commentFields[6].Descriptor()
	// comment.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	comment.ContentValidator = commentDescContent.Validators[0].(func(string) error)
	// commentDescStatus is the schema descriptor for status field.
	commentDescStatus := commentFields[7].Descriptor()
	// comment.DefaultStatus holds the default value on creation for the status field.
	comment.DefaultStatus = commentDescStatus.Default.(int)
	userMixin := schema.User{}.Mixin()
	userMixinHooks0 := userMixin[0].Hooks()
	user.Hooks[0] = userMixinHooks0[0]
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[4].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = func() func(string) error {
		validators := userDescPasswordHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(password_hash string) error {
			for _, fn := range fns {
				if err := fn(password_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescNickname is the schema descriptor for nickname field.
	userDescNickname := userFields[5].Descriptor()
	// user.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	user.NicknameValidator = userDescNickname.Validators[0].(func(string) error)
	// userDescAvatar is the schema descriptor for avatar field.
	userDescAvatar := userFields[6].Descriptor()
	// user.AvatarValidator is a validator for the "avatar" field. It is called by the builders before save.
	user.AvatarValidator = userDescAvatar.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[7].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescBio is the schema descriptor for bio field.
	userDescBio := userFields[8].Descriptor()
	// user.BioValidator is a validator for the "bio" field. It is called by the builders before save.
	user.BioValidator = userDescBio.Validators[0].(func(string) error)
	// userDescWebsite is the schema descriptor for website field.
	userDescWebsite := userFields[9].Descriptor()
	// user.WebsiteValidator is a validator for the "website" field. It is called by the builders before save.
	user.WebsiteValidator = userDescWebsite.Validators[0].(func(string) error)
	// userDescStatus is the schema descriptor for status field.
	userDescStatus := userFields[11].Descriptor()
	// user.DefaultStatus holds the default value on creation for the status field.
	user.DefaultStatus = userDescStatus.Default.(int)
	workMixin := schema.Work{}.Mixin()
	workMixinHooks0 := workMixin[0].Hooks()
	work.Hooks[0] = workMixinHooks0[0]
	workFields := schema.Work{}.Fields()
	_ = workFields
	// workDescCreatedAt is the schema descriptor for created_at field.
	workDescCreatedAt := workFields[1].Descriptor()
	// work.DefaultCreatedAt holds the default value on creation for the created_at field.
	work.DefaultCreatedAt = workDescCreatedAt.Default.(func() time.Time)
	// workDescUpdatedAt is the schema descriptor for updated_at field.
	workDescUpdatedAt := workFields[2].Descriptor()
	// work.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	work.DefaultUpdatedAt = workDescUpdatedAt.Default.(func() time.Time)
	// work.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	work.UpdateDefaultUpdatedAt = workDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workDescTitle is the schema descriptor for title field.
	workDescTitle := workFields[4].Descriptor()
	// work.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	work.TitleValidator = func() func(string) error {
		validators := workDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workDescGenre is the schema descriptor for genre field.
	workDescGenre := workFields[6].Descriptor()
	// work.GenreValidator is a validator for the "genre" field. It is called by the builders before save.
	work.GenreValidator = workDescGenre.Validators[0].(func(string) error)
	// workDescFilePath is the schema descriptor for file_path field.
	workDescFilePath := workFields[7].Descriptor()
	// work.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	work.FilePathValidator = func() func(string) error {
		validators := workDescFilePath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_path string) error {
			for _, fn := range fns {
				if err := fn(file_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workDescFileSize is the schema descriptor for file_size field.
	workDescFileSize := workFields[8].Descriptor()
	// work.DefaultFileSize holds the default value on creation for the file_size field.
	work.DefaultFileSize = workDescFileSize.Default.(int64)
	// work.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	work.FileSizeValidator = workDescFileSize.Validators[0].(func(int64) error)
	// workDescAllowCollaboration is the schema descriptor for allow_collaboration field.
	workDescAllowCollaboration := workFields[9].Descriptor()
	// work.DefaultAllowCollaboration holds the default value on creation for the allow_collaboration field.
	work.DefaultAllowCollaboration = workDescAllowCollaboration.Default.(bool)
	// workDescPlayCount is the schema descriptor for play_count field.
	workDescPlayCount := workFields[10].Descriptor()
	// work.DefaultPlayCount holds the default value on creation for the play_count field.
	work.DefaultPlayCount = workDescPlayCount.Default.(int64)
	// work.PlayCountValidator is a validator for the "play_count" field. It is called by the builders before save.
	work.PlayCountValidator = workDescPlayCount.Validators[0].(func(int64) error)
	// workDescStarCount is the schema descriptor for star_count field.
	workDescStarCount := workFields[11].Descriptor()
	// work.DefaultStarCount holds the default value on creation for the star_count field.
	work.DefaultStarCount = workDescStarCount.Default.(int64)
	// work.StarCountValidator is a validator for the "star_count" field. It is called by the builders before save.
	work.StarCountValidator = workDescStarCount.Validators[0].(func(int64) error)
	// workDescStatus is the schema descriptor for status field.
	workDescStatus := workFields[12].Descriptor()
	// work.DefaultStatus holds the default value on creation for the status field.
	work.DefaultStatus = workDescStatus.Default.(int)
	workproposalFields := schema.WorkProposal{}.Fields()
	_ = workproposalFields
	// workproposalDescTitle is the schema descriptor for title field.
	workproposalDescTitle := workproposalFields[4].Descriptor()
	// workproposal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	workproposal.TitleValidator = func() func(string) error {
		validators := workproposalDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workproposalDescReviewComment is the schema descriptor for review_comment field.
	workproposalDescReviewComment := workproposalFields[9].Descriptor()
	// workproposal.ReviewCommentValidator is a validator for the "review_comment" field. It is called by the builders before save.
	workproposal.ReviewCommentValidator = workproposalDescReviewComment.Validators[0].(func(string) error)
	// workproposalDescCreatedAt is the schema descriptor for created_at field.
	workproposalDescCreatedAt := workproposalFields[10].Descriptor()
	// workproposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	workproposal.DefaultCreatedAt = workproposalDescCreatedAt.Default.(func() time.Time)
	// workproposalDescUpdatedAt is the schema descriptor for updated_at field.
	workproposalDescUpdatedAt := workproposalFields[11].Descriptor()
	// workproposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workproposal.DefaultUpdatedAt = workproposalDescUpdatedAt.Default.(func() time.Time)
	// workproposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workproposal.UpdateDefaultUpdatedAt = workproposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	workstarFields := schema.WorkStar{}.Fields()
	_ = workstarFields
	// workstarDescCreatedAt is the schema descriptor for created_at field.
	workstarDescCreatedAt := workstarFields[3].Descriptor()
	// workstar.DefaultCreatedAt holds the default value on creation for the created_at field.
	workstar.DefaultCreatedAt = workstarDescCreatedAt.Default.(func() time.Time)
	workversionFields := schema.WorkVersion{}.Fields()
	_ = workversionFields
	// workversionDescVersion is the schema descriptor for version field.
	workversionDescVersion := workversionFields[2].Descriptor()
	// workversion.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	workversion.VersionValidator = workversionDescVersion.Validators[0].(func(int) error)
	// workversionDescCommitMessage is the schema descriptor for commit_message field.
	workversionDescCommitMessage := workversionFields[4].Descriptor()
	// workversion.CommitMessageValidator is a validator for the "commit_message" field. It is called by the builders before save.
	workversion.CommitMessageValidator = func() func(string) error {
		validators := workversionDescCommitMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(commit_message string) error {
			for _, fn := range fns {
				if err := fn(commit_message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workversionDescFilePath is the schema descriptor for file_path field.
	workversionDescFilePath := workversionFields[6].Descriptor()
	// workversion.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	workversion.FilePathValidator = func() func(string) error {
		validators := workversionDescFilePath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_path string) error {
			for _, fn := range fns {
				if err := fn(file_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// workversionDescFileSize is the schema descriptor for file_size field.
	workversionDescFileSize := workversionFields[7].Descriptor()
	// workversion.DefaultFileSize holds the default value on creation for the file_size field.
	workversion.DefaultFileSize = workversionDescFileSize.Default.(int64)
	// workversion.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	workversion.FileSizeValidator = workversionDescFileSize.Validators[0].(func(int64) error)
	// workversionDescIsMerged is the schema descriptor for is_merged field.
	workversionDescIsMerged := workversionFields[8].Descriptor()
	// workversion.DefaultIsMerged holds the default value on creation for the is_merged field.
	workversion.DefaultIsMerged = workversionDescIsMerged.Default.(bool)
	// workversionDescCreatedAt is the schema descriptor for created_at field.
	workversionDescCreatedAt := workversionFields[11].Descriptor()
	// workversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	workversion.DefaultCreatedAt = workversionDescCreatedAt.Default.(func() time.Time)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)
