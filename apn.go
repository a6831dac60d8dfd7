// Copyright 2016 Sam Whited.
// Use of this source code is governed by the BSD 2-clause license that can be
// found in the LICENSE file.

package irods

// API numbers sent in a RODS_API_REQ header's IntInfo field, naming which
// operation the attached DataObjInp/CollInp/etc. request performs.
const (
	apnAuthRequest = 710

	apnDataObjOpen   = 602
	apnDataObjCreate = 601
	apnDataObjClose  = 673
	apnDataObjRead   = 675
	apnDataObjWrite  = 676
	apnDataObjLseek  = 674
	apnDataObjUnlink = 615
	apnObjStat       = 633

	apnCollCreate = 681
	apnRmColl     = 682

	apnGeneralAdmin = 706

	apnModAVUMetadata   = 709
	apnModAccessControl = 707

	apnGenQuery = 702

	apnExecMyRule = 625
)
