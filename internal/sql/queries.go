package sql

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_release.sql
var RegisterRelease string

//go:embed queries/lookup_release.sql
var LookupRelease string

//go:embed queries/update_release_status.sql
var UpdateReleaseStatus string

//go:embed queries/delete_release_codes.sql
var DeleteReleaseCodes string

//go:embed queries/deactivate_other_releases.sql
var DeactivateOtherReleases string

//go:embed queries/activate_release.sql
var ActivateRelease string
