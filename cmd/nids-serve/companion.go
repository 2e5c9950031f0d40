package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// companionLevel2Volume reports the newest Level II volume chunk key
// available for site on the public NEXRAD bucket, surfaced alongside
// a product's Level III metadata so a client can cross-reference the
// raw volume a derived product came from. Grounded on the donor's
// anonymous-session/ListObjectsV2 construction for the same bucket
// (cmd/l2serv's loadArchive2Realtime), reused here for a metadata
// lookup rather than a full chunk download.
func companionLevel2Volume(site string) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.AnonymousCredentials,
		Region:      aws.String("us-east-1"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 session: %w", err)
	}
	svc := s3.New(sess)

	resp, err := svc.ListObjectsV2(&s3.ListObjectsV2Input{
		Bucket:  aws.String("unidata-nexrad-level2-chunks"),
		Prefix:  aws.String(site + "/"),
		MaxKeys: aws.Int64(1000),
	})
	if err != nil {
		return "", fmt.Errorf("list %s: %w", site, err)
	}

	var newest string
	for _, obj := range resp.Contents {
		if obj.Key != nil && *obj.Key > newest {
			newest = *obj.Key
		}
	}
	if newest == "" {
		return "", fmt.Errorf("no level II chunks found for %s", site)
	}
	return newest, nil
}
