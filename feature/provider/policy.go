package provider

import "storage-provider/core/storage"

// AccessLevel is the canned ACL applied to written objects.
type AccessLevel int

const (
	AccessPublic AccessLevel = iota
	AccessPrivate
)

// RetentionClass is the storage class applied to written objects.
type RetentionClass int

const (
	RetentionStandard RetentionClass = iota
	RetentionReduced
)

// AccessPolicy is the access level and retention class an object is written with.
type AccessPolicy struct {
	Access    AccessLevel
	Retention RetentionClass
}

// ResolvePolicy derives the write policy from the two content flags.
// Trashed objects are always private and kept on reduced redundancy storage.
func ResolvePolicy(isPrivate, isTrashed bool) AccessPolicy {
	p := AccessPolicy{Access: AccessPublic, Retention: RetentionStandard}
	if isPrivate || isTrashed {
		p.Access = AccessPrivate
	}
	if isTrashed {
		p.Retention = RetentionReduced
	}
	return p
}

// String renders the policy as ACCESS/RETENTION, e.g. "PRIVATE/REDUCED".
func (p AccessPolicy) String() string {
	return p.Access.String() + "/" + p.Retention.String()
}

// CannedACL returns the S3 canned ACL for the access level.
func (a AccessLevel) CannedACL() string {
	if a == AccessPrivate {
		return "private"
	}
	return "public-read"
}

func (a AccessLevel) String() string {
	if a == AccessPrivate {
		return "PRIVATE"
	}
	return "PUBLIC"
}

// StorageClass returns the S3 storage class for the retention class.
func (r RetentionClass) StorageClass() string {
	if r == RetentionReduced {
		return "REDUCED_REDUNDANCY"
	}
	return "STANDARD"
}

func (r RetentionClass) String() string {
	if r == RetentionReduced {
		return "REDUCED"
	}
	return "STANDARD"
}

// ObjectMeta is what the caller states about an object being written.
type ObjectMeta struct {
	MimeType    string
	Disposition string
	IsPrivate   bool
	IsTrashed   bool
}

// Policy resolves the access policy for the metadata flags.
func (m ObjectMeta) Policy() AccessPolicy {
	return ResolvePolicy(m.IsPrivate, m.IsTrashed)
}

// putOptions translates the metadata into backend write parameters.
func (m ObjectMeta) putOptions() storage.PutOptions {
	p := m.Policy()
	return storage.PutOptions{
		ContentType:        m.MimeType,
		ContentDisposition: m.Disposition,
		ACL:                p.Access.CannedACL(),
		StorageClass:       p.Retention.StorageClass(),
	}
}
