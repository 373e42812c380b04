package source

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// fetchGit clones the repository into memory and reads one file from the
// requested revision, or from HEAD when no ref is given.
func (l *Loader) fetchGit(ctx context.Context, loc Location) (*Fetched, error) {
	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
		URL:  loc.URL,
		Tags: git.AllTags,
	})
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindGit), loc.Raw, fmt.Errorf("clone %s: %w", loc.URL, err))
	}

	hash, err := resolveRevision(repo, loc.Ref)
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindGit), loc.Raw, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindGit), loc.Raw, err)
	}

	file, err := commit.File(loc.Path)
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindGit), loc.Raw, fmt.Errorf("%s at %s: %w", loc.Path, hash.String()[:7], err))
	}

	contents, err := file.Contents()
	if err != nil {
		return nil, themeerrors.NewSourceError(string(KindGit), loc.Raw, err)
	}

	return &Fetched{
		Location: loc,
		Format:   loc.Format(),
		Data:     []byte(contents),
		Revision: hash.String(),
	}, nil
}

func resolveRevision(repo *git.Repository, ref string) (*plumbing.Hash, error) {
	if ref == "" {
		head, err := repo.Head()
		if err != nil {
			return nil, fmt.Errorf("resolve HEAD: %w", err)
		}
		hash := head.Hash()
		return &hash, nil
	}

	candidates := []string{ref, "origin/" + ref}
	for _, candidate := range candidates {
		if hash, err := repo.ResolveRevision(plumbing.Revision(candidate)); err == nil {
			return hash, nil
		}
	}
	return nil, fmt.Errorf("unknown ref %q", ref)
}
