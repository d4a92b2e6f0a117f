// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// capspa provides client-side helpers for the OIDC implicit and hybrid
// flows used by browser based single-page applications.
//
// See the oidc package.
package capspa
