package contract

import "wiccapedia-api/internal/entity"

type UserRepository = Repository[entity.User, int64]

type NotebookRepository = Repository[entity.Notebook, int64]

type CoverRepository = Repository[entity.Cover, int64]

type DecorationRepository = Repository[entity.Decoration, int64]
